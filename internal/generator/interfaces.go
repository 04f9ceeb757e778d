package generator

import "github.com/toyz/srvgen/internal/models"

// CodeGenerator renders validated models into C++ source units
type CodeGenerator interface {
	GenerateRoutes(routes []models.Route, outputPath string) *models.GeneratedFile
	GenerateDtos(header *models.HeaderFile, dtos []models.Dto) *models.GeneratedFile
}
