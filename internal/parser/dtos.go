package parser

import (
	stderrors "errors"
	"strings"

	"github.com/toyz/srvgen/internal/annotations"
	"github.com/toyz/srvgen/internal/errors"
	"github.com/toyz/srvgen/internal/models"
	"github.com/toyz/srvgen/internal/types"
)

// BuildDtos returns the DTOs declared in one header in declaration order.
//
// known holds the user types visible to the first class. Each DTO is added
// to the set as soon as its own fields are scanned, so a field can only
// reference DTOs declared earlier in the same batch. The extended set is
// returned; callers start every header from a fresh set.
func (p *Parser) BuildDtos(file *models.HeaderFile, known types.KnownTypes) ([]models.Dto, types.KnownTypes, error) {
	var dtos []models.Dto

	for _, class := range file.Classes {
		dto, err := p.buildDto(file, class, known)
		if err != nil {
			return nil, known, err
		}
		if dto.Direction == models.DirectionNone {
			continue
		}

		known = known.With(dto.QualifiedName)
		dtos = append(dtos, dto)
	}

	return dtos, known, nil
}

func (p *Parser) buildDto(file *models.HeaderFile, class models.Class, known types.KnownTypes) (models.Dto, error) {
	namespace := models.FormatNamespace(class.Namespace)
	dto := models.Dto{
		Name:          class.Name,
		Namespace:     namespace,
		QualifiedName: namespace + class.Name,
	}
	dto.Description, _ = annotations.Parse(class.DocComment).First(annotations.TagBrief)

	var fields []models.Field
	for _, property := range class.Properties.Public {
		if property.Static {
			continue
		}
		if direction, ok := parseMarkers(property.RawType); ok {
			dto.Direction |= direction
			continue
		}
		fields = append(fields, property)
	}
	if dto.Direction == models.DirectionNone {
		// not a DTO; field types are never inspected
		return dto, nil
	}

	for _, property := range fields {
		decl := fieldContext(file, class, property)
		res, err := p.resolver.Resolve(property.RawType, namespace, known)
		if err != nil {
			if stderrors.Is(err, types.ErrMalformedType) {
				return models.Dto{}, p.reporter.ReportPropertyType(decl, property.RawType, err)
			}
			return models.Dto{}, err
		}
		if res.Category == models.CategoryUnresolved {
			continue
		}

		field, err := p.buildField(property, res, decl)
		if err != nil {
			return models.Dto{}, err
		}
		dto.Fields = append(dto.Fields, field)
	}

	return dto, nil
}

func (p *Parser) buildField(property models.Field, res types.Resolution, decl errors.DeclarationContext) (models.DtoField, error) {
	attrs := annotations.Parse(property.DocComment)

	field := models.DtoField{
		Name:        property.Name,
		Alias:       property.Name,
		RawType:     property.RawType,
		ElementType: res.Type,
		Category:    res.Category,
		Container:   res.Container,
		Required:    !attrs.Has(annotations.TagOptional),
		Ignored:     attrs.Has(annotations.TagIgnore),
		Line:        property.LineNumber,
	}

	switch aliases := attrs.Values(annotations.TagAlias); {
	case len(aliases) > 1:
		return models.DtoField{}, p.reporter.ReportDuplicateAlias(decl, aliases)
	case len(aliases) == 1 && aliases[0] == "":
		return models.DtoField{}, p.reporter.ReportEmptyAlias(decl)
	case len(aliases) == 1:
		field.Alias = aliases[0]
	}

	field.Description, _ = attrs.First(annotations.TagBrief)
	return field, nil
}

// parseMarkers reports whether raw consists only of one or two marker macros
func parseMarkers(raw string) (models.Direction, bool) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 || len(tokens) > 2 {
		return models.DirectionNone, false
	}

	direction := models.DirectionNone
	for _, token := range tokens {
		d, ok := markerDirections[token]
		if !ok {
			return models.DirectionNone, false
		}
		direction |= d
	}
	return direction, true
}
