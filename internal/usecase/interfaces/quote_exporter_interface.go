package interfaces

import (
	"fenceworks/internal/domain/entities"
	"io"
)

// IQuoteExporter renders a quote report into w.
type IQuoteExporter interface {
	WriteQuotes(w io.Writer, quotes []entities.Quote) error
}
