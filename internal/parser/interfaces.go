package parser

import (
	"github.com/toyz/srvgen/internal/models"
	"github.com/toyz/srvgen/internal/types"
)

// ModelBuilder turns one header's declarations into validated route and DTO models
type ModelBuilder interface {
	BuildRoutes(file *models.HeaderFile) ([]models.Route, error)
	BuildDtos(file *models.HeaderFile, known types.KnownTypes) ([]models.Dto, types.KnownTypes, error)
}
