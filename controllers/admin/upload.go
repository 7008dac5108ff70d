package adminController

import (
	"log"

	"placementpulse/middleware"
	"placementpulse/utils"

	"github.com/gofiber/fiber/v2"
)

const uploadsDir = "./public/uploads"

// UploadImage accepts a multipart image upload for course covers and topic
// illustrations. Images only, 5 MB cap.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	if !utils.IsAllowedImageType(file.Header.Get("Content-Type")) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file type. Only images are allowed!", nil)
	}

	if file.Size > utils.MaxUploadSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File too large. Maximum size is 5MB!", nil)
	}

	filename, err := utils.SaveUploadedImage(file, uploadsDir)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"url":      utils.GetFileURL(filename),
		"filename": filename,
	})
}
