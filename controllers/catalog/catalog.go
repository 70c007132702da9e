package catalog

import (
	"strconv"

	"rhumuda-booking/logger"
	"rhumuda-booking/repository"
	"rhumuda-booking/types"

	"github.com/gofiber/fiber/v2"
)

// CatalogController serves the read-through reference data endpoints
// backing the inquiry form dropdowns.
type CatalogController struct {
	Catalog repository.CatalogRepository
}

func NewCatalogController(catalog repository.CatalogRepository) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// JettyPoints lists all active jetty points
func (cc *CatalogController) JettyPoints(c *fiber.Ctx) error {
	points, err := cc.Catalog.ListActiveJettyPoints()
	if err != nil {
		logger.Error("Failed to list jetty points", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			types.NewApiError(fiber.StatusInternalServerError, "Internal server error"))
	}
	return c.Status(fiber.StatusOK).JSON(points)
}

// AddOns lists all active add-ons
func (cc *CatalogController) AddOns(c *fiber.Ctx) error {
	addOns, err := cc.Catalog.ListActiveAddOns()
	if err != nil {
		logger.Error("Failed to list add-ons", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			types.NewApiError(fiber.StatusInternalServerError, "Internal server error"))
	}
	return c.Status(fiber.StatusOK).JSON(addOns)
}

// PackagesByCategory lists packages with their price tiers and included
// services for one category
func (cc *CatalogController) PackagesByCategory(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.Params("categoryId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			types.NewApiError(fiber.StatusBadRequest, "Invalid category ID", err.Error()))
	}

	packages, err := cc.Catalog.ListPackagesByCategory(uint(categoryID))
	if err != nil {
		logger.Error("Failed to list packages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			types.NewApiError(fiber.StatusInternalServerError, "Internal server error"))
	}
	return c.Status(fiber.StatusOK).JSON(packages)
}

// Categories lists all package categories
func (cc *CatalogController) Categories(c *fiber.Ctx) error {
	categories, err := cc.Catalog.ListCategories()
	if err != nil {
		logger.Error("Failed to list categories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			types.NewApiError(fiber.StatusInternalServerError, "Internal server error"))
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}
