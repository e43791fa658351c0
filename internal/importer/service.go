package importer

import (
	"fmt"
	"io"
)

type Service struct {
	csvImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter: newCSVImporter(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]Row, error) {
	var imp Importer

	switch format {
	case FormatCSV:
		imp = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}
