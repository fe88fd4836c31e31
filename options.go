package tableconv

import (
	"github.com/tsawler/tableconv/format"
	"github.com/tsawler/tableconv/model"
	"github.com/tsawler/tableconv/units"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Source dialect; Unknown means detect from content.
	dialect format.Dialect

	// Unit that CALS widths are normalized to on parse and build.
	widthUnit units.Unit

	// Content given to cells created to pad ragged rows.
	placeholder model.Content

	// Emit the CALS table element inside its tgroup instead of around it.
	calsTableInTgroup bool
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		dialect:   format.Unknown,
		widthUnit: units.Millimeter,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		dialect:           o.dialect,
		widthUnit:         o.widthUnit,
		placeholder:       o.placeholder,
		calsTableInTgroup: o.calsTableInTgroup,
	}
}
