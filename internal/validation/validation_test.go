package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		S3Key    string `validate:"required"     json:"s3_key"`
		Category string `validate:"max=40"       json:"category"`
		Filename string `validate:"required"     json:"filename"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{S3Key: "gallery/nature/forest.jpg", Category: "nature", Filename: "forest.jpg"},
			wantErr: false,
		},
		{
			name:    "missing key",
			in:      Input{Filename: "forest.jpg"},
			wantErr: true,
			wantJsonMap: map[string]string{
				"s3_key": "required",
			},
		},
		{
			name:    "missing filename and long category",
			in:      Input{S3Key: "k", Category: "this-category-name-is-way-too-long-to-be-accepted"},
			wantErr: true,
			wantJsonMap: map[string]string{
				"filename": "required",
				"category": "max",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got tag %q; want %q (full: %s)", field, got[field], tag, js)
				}
			}
		})
	}
}
