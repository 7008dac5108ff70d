package gdTopicRoutes

import (
	controllers "placementpulse/controllers/gdtopic"
	validators "placementpulse/validators/gdtopic"

	"github.com/gofiber/fiber/v2"
)

// SetupGDTopicRoutes sets up the public group-discussion topic routes
func SetupGDTopicRoutes(app *fiber.App) {
	topicGroup := app.Group("/api/gd-topics")

	topicGroup.Get("/", validators.List(), controllers.GetGDTopics)
	topicGroup.Post("/:id/like", validators.TopicID(), controllers.LikeGDTopic)
}
