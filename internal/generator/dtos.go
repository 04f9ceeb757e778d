package generator

import (
	"fmt"
	"path/filepath"

	"github.com/toyz/srvgen/internal/codegen"
	"github.com/toyz/srvgen/internal/models"
)

// GenerateDtos renders the implementation unit for the DTOs of one header.
// Each DTO gets Deserialize when it has the In direction and Serialize when
// it has the Out direction, in that order.
func (g *Generator) GenerateDtos(header *models.HeaderFile, dtos []models.Dto) *models.GeneratedFile {
	file := newSourceFile(codegen.Quote(filepath.Base(header.Path)))

	for _, dto := range dtos {
		if dto.Direction.Has(models.DirectionIn) {
			file.Blocks = append(file.Blocks, deserializeFunction(dto))
		}
		if dto.Direction.Has(models.DirectionOut) {
			file.Blocks = append(file.Blocks, serializeFunction(dto))
		}
	}

	return &models.GeneratedFile{
		Kind:    models.OutputDto,
		Path:    DtoSourcePath(header.Path),
		Source:  header.Path,
		Content: file.Render(),
	}
}

func nodeName(field models.DtoField) string {
	return "_" + field.Name + "_node_temp_"
}

func deserializeFunction(dto models.Dto) *codegen.Block {
	b := &codegen.Block{}
	b.Addf(0, "bool %s::Deserialize(const Json::Value& json) {", dto.QualifiedName)
	b.Addf(1, "if (!json.isObject()) { return %t; }", dto.RequiredFieldCount() == 0)

	for _, field := range dto.Fields {
		if field.Ignored {
			b.Addf(1, "// ignore %s", codegen.Quote(field.Name))
			continue
		}

		node := nodeName(field)
		b.Add(1, codegen.Statement(
			fmt.Sprintf("const Json::Value& %s = json[%s];", node, codegen.Quote(field.Alias)),
			extractStatement(field, node),
			presenceCheck(field, node),
		))
	}

	b.Add(1, "return true;")
	b.Add(0, "}")
	return b
}

// extractStatement renders the shape check and assignment for one field
func extractStatement(field models.DtoField, node string) string {
	switch field.Category {
	case models.CategoryScalar:
		return fmt.Sprintf("if (%s.is<%s>()) { %s = %s.as<%s>(); }",
			node, field.ElementType, field.Name, node, field.ElementType)

	case models.CategoryUser:
		return fmt.Sprintf("if (%s.isObject()) { if (!%s.Deserialize(%s)) { return false; } }",
			node, field.Name, node)

	case models.CategoryContainerOfScalar:
		return arrayLoop(field, node,
			fmt.Sprintf("if (%s[i].is<%s>()) { %s.%s(%s[i].as<%s>()); } else { return false; }",
				node, field.ElementType, field.Name, field.Container.InsertMethod, node, field.ElementType))

	case models.CategoryContainerOfUser:
		return arrayLoop(field, node,
			fmt.Sprintf("%s item; if (item.Deserialize(%s[i])) { %s.%s(item); } else { return false; }",
				field.ElementType, node, field.Name, field.Container.InsertMethod))
	}
	return ""
}

func arrayLoop(field models.DtoField, node, body string) string {
	reserve := ""
	if field.Container.Reserve {
		reserve = fmt.Sprintf("%s.reserve(size);", field.Name)
	}
	return codegen.Statement(
		fmt.Sprintf("if (%s.isArray()) { unsigned int size = %s.size();", node, node),
		reserve,
		"for (unsigned int i = 0; i < size; ++i) {",
		body,
		"} }",
	)
}

// presenceCheck fails a required field that is missing or of the wrong
// shape; an optional field may only be null or absent
func presenceCheck(field models.DtoField, node string) string {
	if field.Required {
		return "else { return false; }"
	}
	return fmt.Sprintf("else if (!%s.isNull()) { return false; }", node)
}

func serializeFunction(dto models.Dto) *codegen.Block {
	b := &codegen.Block{}
	b.Addf(0, "Json::Value %s::Serialize() const {", dto.QualifiedName)
	b.Add(1, "Json::Value json;")

	for _, field := range dto.Fields {
		if field.Ignored {
			b.Addf(1, "// ignore %s", codegen.Quote(field.Name))
			continue
		}

		key := codegen.Quote(field.Alias)
		node := nodeName(field)
		switch field.Category {
		case models.CategoryScalar:
			b.Addf(1, "json[%s] = %s;", key, field.Name)
		case models.CategoryUser:
			b.Addf(1, "json[%s] = %s.Serialize();", key, field.Name)
		case models.CategoryContainerOfScalar:
			b.Addf(1, "Json::Value& %s = json[%s]; for (auto& item : %s) { %s.append(item); }",
				node, key, field.Name, node)
		case models.CategoryContainerOfUser:
			b.Addf(1, "Json::Value& %s = json[%s]; for (auto& item : %s) { %s.append(item.Serialize()); }",
				node, key, field.Name, node)
		}
	}

	b.Add(1, "return json;")
	b.Add(0, "}")
	return b
}
