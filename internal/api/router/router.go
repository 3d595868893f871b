package router

import (
	"kinovzor/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup registers all business routes.
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	movieHandler *handler.MovieHandler,
	reviewHandler *handler.ReviewHandler,
	favoriteHandler *handler.FavoriteHandler,
	searchHandler *handler.SearchHandler,
	authMiddleware gin.HandlerFunc,
	authOptionalMiddleware gin.HandlerFunc,
	moderatorMiddleware gin.HandlerFunc,
	adminMiddleware gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- auth ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		authRequired := auth.Group("", authMiddleware)
		{
			authRequired.POST("/logout", authHandler.Logout)
			authRequired.GET("/me", authHandler.Me)
		}
	}

	// --- users ---
	users := v1.Group("/users", authMiddleware)
	{
		users.GET("/:id", userHandler.Get)
		users.PATCH("/me", userHandler.Update)

		// admin panel
		admin := users.Group("", adminMiddleware)
		{
			admin.GET("", userHandler.List)
			admin.DELETE("/:id", userHandler.Delete)
		}
	}

	// --- movies ---
	movies := v1.Group("/movies")
	{
		// public catalog
		movies.GET("", movieHandler.List)
		movies.GET("/stats", movieHandler.SiteStats)
		movies.GET("/:id", movieHandler.Get)
		movies.GET("/:id/rating-stats", movieHandler.RatingStats)
		movies.GET("/:id/reviews", authOptionalMiddleware, reviewHandler.ListByMovie)

		// viewer actions
		moviesAuth := movies.Group("", authMiddleware)
		{
			moviesAuth.POST("/:id/reviews", reviewHandler.Create)
			moviesAuth.POST("/:id/favorite", favoriteHandler.Add)
			moviesAuth.DELETE("/:id/favorite", favoriteHandler.Remove)
			moviesAuth.GET("/:id/favorite", favoriteHandler.Status)
		}

		// catalog management
		moviesAdmin := movies.Group("", authMiddleware, adminMiddleware)
		{
			moviesAdmin.POST("", movieHandler.Create)
			moviesAdmin.PATCH("/:id", movieHandler.Update)
			moviesAdmin.DELETE("/:id", movieHandler.Delete)
			moviesAdmin.POST("/:id/poster", movieHandler.UploadPoster)
		}
	}

	// --- reviews ---
	reviews := v1.Group("/reviews")
	{
		reviews.GET("/:id", reviewHandler.Get)

		reviewsAuth := reviews.Group("", authMiddleware)
		{
			reviewsAuth.PATCH("/:id", reviewHandler.Update)
			reviewsAuth.DELETE("/:id", reviewHandler.Delete)
		}

		// moderation
		moderation := reviews.Group("", authMiddleware, moderatorMiddleware)
		{
			moderation.GET("/pending", reviewHandler.ListPending)
			moderation.POST("/:id/approve", reviewHandler.Approve)
		}
	}

	// --- favorites ---
	favorites := v1.Group("/favorites", authMiddleware)
	{
		favorites.GET("", favoriteHandler.List)
	}

	// --- search ---
	search := v1.Group("/search")
	{
		search.GET("/movies", searchHandler.Movies)
	}
}
