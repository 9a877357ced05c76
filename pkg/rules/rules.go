// Package rules holds the domain invariants checked before a write is
// committed.
package rules

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"agbrain/entities"
	"agbrain/pkg/apperr"
)

const (
	cpfDigits  = 11
	cnpjDigits = 14
)

// NormalizeDocument keeps only the ASCII digits of a CPF/CNPJ.
func NormalizeDocument(doc string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, doc)
}

// ValidateDocument expects a normalized document.
func ValidateDocument(doc string) error {
	if n := len(doc); n != cpfDigits && n != cnpjDigits {
		return apperr.InvalidInput("'document' must be a cpf or a cnpj")
	}
	for _, r := range doc {
		if r < '0' || r > '9' {
			return apperr.InvalidInput("'document' must contain only digits")
		}
	}
	return nil
}

// CheckFarmArea enforces arableArea + vegetationArea <= totalArea.
func CheckFarmArea(totalArea, arableArea, vegetationArea float64) error {
	if totalArea < arableArea+vegetationArea {
		return apperr.InvalidInput("'arableArea' + 'vegetationArea' can't be greater than 'totalArea'")
	}
	return nil
}

type DocumentFinder interface {
	FindByDocument(ctx context.Context, document string) (*entities.Producer, error)
}

// CheckDocumentAvailable fails with AlreadyExists when a producer already
// holds doc. It is a read-then-write check; the unique index on
// producers.document catches concurrent creates.
func CheckDocumentAvailable(ctx context.Context, f DocumentFinder, doc string) error {
	existing, err := f.FindByDocument(ctx, doc)
	if err != nil {
		return fmt.Errorf("lookup document: %w", err)
	}
	if existing != nil {
		return apperr.AlreadyExists("a producer with this document already exists")
	}
	return nil
}
