package main

import (
	"fmt"

	"kinovzor/internal/config"
	"kinovzor/internal/infra/database"
	"kinovzor/internal/model"
	"kinovzor/internal/repository"
	"kinovzor/pkg/logger"
	"kinovzor/pkg/utils"

	"go.uber.org/zap"
)

type seedUser struct {
	email    string
	username string
	password string
}

type seedMovie struct {
	title  string
	year   int
	genre  string
	poster string
	desc   string
}

type seedReview struct {
	text   string
	rating int
}

var viewers = []seedUser{
	{"ivanov@mail.ru", "Иванов Игорь", "viewer123"},
	{"petrov@mail.ru", "Петров Петр", "viewer123"},
	{"smirnov@mail.ru", "Смирнов Сергей", "viewer123"},
	{"sokolov@mail.ru", "Соколов Сергей", "viewer123"},
	{"lebedev@mail.ru", "Лебедев Лев", "viewer123"},
	{"novikov@mail.ru", "Новиков Николай", "viewer123"},
	{"volkov@mail.ru", "Волков Виктор", "viewer123"},
	{"solovyev@mail.ru", "Соловьев Станислав", "viewer123"},
	{"antonov@mail.ru", "Антонов Андрей", "viewer123"},
	{"pavlov@mail.ru", "Павлов Павел", "viewer123"},
}

var movies = []seedMovie{
	{"Шоу Трумэна", 1998, "Драма", "https://images.tmdb.org/t/p/w500/wcZAHMq0dHW0yVSiXG3wk9T8NuS.jpg", "История человека, жизнь которого - один огромный телевизионный спектакль"},
	{"Жизнь прекрасна", 1997, "Драма", "https://images.tmdb.org/t/p/w500/a8Q0gKwXL4sTY4e2JRqJJe0R9Uf.jpg", "Отец защищает своего сына от ужасов войны через игру и воображение"},
	{"Форрест Гамп", 1994, "Драма", "https://images.tmdb.org/t/p/w500/h5oK4pZKTBbzYWh5f5GR6nUyJGX.jpg", "История простого человека, который достиг невероятных высот"},
	{"Зелёная миля", 1999, "Драма", "https://images.tmdb.org/t/p/w500/radBbkxJuMCIgDmH6sIJ3xOIw5N.jpg", "Исправительная камера и чудо в виде сверхъестественных способностей"},
	{"Спасение рядового Райана", 1998, "Боевик", "https://images.tmdb.org/t/p/w500/3mQm4l3Fb9xP6R8vNPSu6s4RbVq.jpg", "Эпическая история о спасении солдата во время Второй мировой войны"},
	{"Бойцовский клуб", 1999, "Триллер", "https://images.tmdb.org/t/p/w500/hEv2ovsKl5p3itLVeKyUaO0d04o.jpg", "Психологический триллер о подпольном клубе бойцов"},
	{"Матрица", 1999, "Фантастика", "https://images.tmdb.org/t/p/w500/vgpXmVaVSUdzqkAcg1aWZbB0Bsb.jpg", "Революционный фантастический боевик о реальности и иллюзии"},
	{"Список Шиндлера", 1993, "Драма", "https://images.tmdb.org/t/p/w500/sF1U4EUQS8YHUPAzM9QFGpDQi23.jpg", "История немецкого бизнесмена, спасшего тысячи евреев"},
	{"Титаник", 1997, "Мелодрама", "https://images.tmdb.org/t/p/w500/9xjZS2rlWxYGEARQbIcRswroIDe.jpg", "Эпическая романтическая драма о гибели лайнера"},
	{"Пульп Фикшн", 1994, "Триллер", "https://images.tmdb.org/t/p/w500/d8duYyyC9J5T3OMsDNxoXy7AzM2.jpg", "Нелинейное повествование о криминальной жизни Лос-Анджелеса"},
	{"Назад в будущее", 1985, "Комедия", "https://images.tmdb.org/t/p/w500/w0OMwQ67BC2I3yxn91jMmqKGP2D.jpg", "Приключенческая комедия о путешествиях во времени"},
	{"Пираты Карибского моря", 2003, "Приключения", "https://images.tmdb.org/t/p/w500/tkt7b9G3MC2j0FkyMb1dBG6MxPf.jpg", "Веселое приключение капитана Джека Воробья"},
	{"Интерстеллар", 2014, "Фантастика", "https://images.tmdb.org/t/p/w500/nv5yFk2kZo6jjc2gc3umaGmel8Z.jpg", "Космическая эпопея о спасении человечества"},
	{"Темный рыцарь", 2008, "Боевик", "https://images.tmdb.org/t/p/w500/1hCw8kSUIKd9yb1PLV2yAGG7vIY.jpg", "Второй фильм о Бэтмене с легендарным Джокером"},
	{"Один дома", 1990, "Комедия", "https://images.tmdb.org/t/p/w500/r1bKEBUgJDJ6dIwBN2L6oG8BYtX.jpg", "Семейная комедия о мальчике, оставшемся защищать дом"},
	{"Парк Юрского периода", 1993, "Приключения", "https://images.tmdb.org/t/p/w500/WXZ1O0nYL9T2AehM8YGOmtEj2Ov.jpg", "Культовая фантастика про парк динозавров"},
}

var reviewTemplates = map[string][]seedReview{
	"Драма": {
		{"Глубокий фильм, который трогает за душу. Актёры играют великолепно!", 5},
		{"Эмоциональная история, не могу оторваться от экрана.", 5},
		{"Хорошая драма, но местами медленновато.", 4},
		{"Интересный сюжет, но концовка предсказуема.", 3},
		{"Мощная история, оставляет впечатление.", 5},
		{"Неплохо, но мне кажется, лучше читать книгу.", 3},
	},
	"Боевик": {
		{"Динамичный и захватывающий боевик! Отличные трюки!", 5},
		{"Супер! Не скучал ни секунды, экшена на всё 100%", 5},
		{"Хороший боевик, но сюжет немного слабый.", 4},
		{"Много взрывов и стрельбы, без особого смысла.", 3},
		{"Классический боевик! Есть всё - действие, герой, девушка!", 5},
		{"Предсказуемо, но развлечения ради годится.", 3},
	},
	"Фантастика": {
		{"Поражающий воображение фильм! Великолепная визуализация!", 5},
		{"Научная фантастика на высшем уровне. Просто восхитительно!", 5},
		{"Интересные идеи, но реализация могла быть лучше.", 4},
		{"Слишком много компьютерной графики, мало сюжета.", 3},
		{"Инновационный и захватывающий фильм!", 5},
		{"Хорошая фантастика, но местами скучновато.", 3},
	},
	"Комедия": {
		{"Очень смешная и весёлая! Перенеслась в прекрасное настроение!", 5},
		{"Отличная комедия! Смеялась весь фильм!", 5},
		{"Забавная комедия, хорошо помогает расслабиться.", 4},
		{"Юмор не очень, но что-то смешное есть.", 3},
		{"Гениальная комедия! Просто шедевр юмора!", 5},
		{"Попытка комедии, но юмор странноват.", 2},
	},
	"Триллер": {
		{"Напряженный и захватывающий триллер! На краю кресла!", 5},
		{"Держит в напряжении всё время. Отличный триллер!", 5},
		{"Хороший триллер, но предсказуем в некоторых местах.", 4},
		{"Ничего особенного, стандартный триллер.", 3},
		{"Невероятно напряженный и интересный фильм!", 5},
		{"Можно посмотреть, но лучше есть.", 3},
	},
	"Мелодрама": {
		{"Трогательная история любви. Со слезами на глазах!", 5},
		{"Красивая любовная история. Очень романтично!", 5},
		{"Мелодрама хороша, но местами слишком сладкая.", 4},
		{"Стандартная история любви, ничего нового.", 3},
		{"Волшебный фильм про вечную любовь!", 5},
		{"Слишком много слёз, мало действия.", 2},
	},
	"Приключения": {
		{"Захватывающее приключение! Магия и чудеса!", 5},
		{"Веселое путешествие полное сюрпризов!", 5},
		{"Хороший фильм про приключения, развлечение гарантировано.", 4},
		{"Неплохо для семейного просмотра.", 3},
		{"Шикарный фильм про путешествия и дружбу!", 5},
		{"Неплохо, но могло быть ещё лучше.", 3},
	},
}

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.User{},
		&model.Movie{},
		&model.Review{},
		&model.Favorite{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	logger.Info("Seeding users")

	userIDs := make([]int64, 0, len(viewers))
	for _, v := range viewers {
		id, err := createUser(userRepo, v, false, false)
		if err != nil {
			logger.Fatal("Failed to create viewer", zap.String("email", v.email), zap.Error(err))
		}
		userIDs = append(userIDs, id)
	}

	if _, err := createUser(userRepo, seedUser{"moderator@kinovzor.ru", "moderator", "admin123"}, true, false); err != nil {
		logger.Fatal("Failed to create moderator", zap.Error(err))
	}
	if _, err := createUser(userRepo, seedUser{"admin@kinovzor.ru", "admin", "admin123"}, true, true); err != nil {
		logger.Fatal("Failed to create admin", zap.Error(err))
	}

	logger.Info("Seeding movies and reviews", zap.Int("movies", len(movies)))

	totalReviews := 0
	for i, m := range movies {
		description := m.desc
		posterURL := m.poster
		movie := &model.Movie{
			Title:       m.title,
			Description: &description,
			Genre:       m.genre,
			Year:        m.year,
			PosterURL:   &posterURL,
		}
		if err := movieRepo.Create(movie); err != nil {
			logger.Fatal("Failed to create movie", zap.String("title", m.title), zap.Error(err))
		}

		templates, ok := reviewTemplates[m.genre]
		if !ok {
			templates = reviewTemplates["Драма"]
		}

		// 4-7 reviews per movie, cycling through viewers. The last one per
		// movie stays pending so the moderation queue is not empty.
		reviewCount := 4 + i%4
		for j := 0; j < reviewCount; j++ {
			tmpl := templates[j%len(templates)]
			rating := tmpl.rating
			review := &model.Review{
				MovieID: movie.ID,
				UserID:  userIDs[j%len(userIDs)],
				Text:    tmpl.text,
				Rating:  &rating,
			}
			if err := reviewRepo.Create(review); err != nil {
				logger.Fatal("Failed to create review", zap.Error(err))
			}
			if j < reviewCount-1 {
				if err := reviewRepo.Approve(review.ID); err != nil {
					logger.Fatal("Failed to approve review", zap.Error(err))
				}
			}
			totalReviews++
		}
	}

	logger.Info("Seed complete",
		zap.Int("movies", len(movies)),
		zap.Int("viewers", len(userIDs)),
		zap.Int("reviews", totalReviews),
	)
	fmt.Println("Seed complete.")
	fmt.Println("Moderator: moderator@kinovzor.ru / admin123")
	fmt.Println("Admin:     admin@kinovzor.ru / admin123")
	fmt.Printf("Viewer:    %s / %s\n", viewers[0].email, viewers[0].password)
}

func createUser(repo *repository.UserRepository, u seedUser, isModerator, isAdmin bool) (int64, error) {
	hash, err := utils.HashPassword(u.password)
	if err != nil {
		return 0, err
	}
	user := &model.User{
		Email:       u.email,
		Password:    hash,
		Username:    u.username,
		IsUser:      true,
		IsModerator: isModerator,
		IsAdmin:     isAdmin,
	}
	if err := repo.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}
