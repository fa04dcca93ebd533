package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		assetName string
		wantErr   error
	}{
		{
			name:      "valid name",
			assetName: "section",
		},
		{
			name:      "valid name with dash",
			assetName: "report-dark",
		},
		{
			name:      "empty name",
			assetName: "",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "forward slash",
			assetName: "styles/report",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "backslash",
			assetName: "styles\\report",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "dot traversal",
			assetName: "..",
			wantErr:   ErrInvalidAssetName,
		},
		{
			name:      "extension smuggling",
			assetName: "report.css",
			wantErr:   ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.assetName)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) = %v, want %v", tt.assetName, err, tt.wantErr)
			}
		})
	}
}
