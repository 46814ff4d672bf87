package recognize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiscaladmin/reconcile/internal/recognize"
)

func TestClassify(t *testing.T) {
	ops := []recognize.LedgerOpType{
		{
			ID:            "op-1",
			Code:          "CSHIN-INV",
			BasisCode:     "CSHIN",
			IncludedWords: []string{"arve", "invoice"},
			ExcludedWords: []string{"tagastus"},
		},
		{
			ID:        "op-2",
			Code:      "CSHIN-ANY",
			BasisCode: "CSHIN",
		},
		{
			ID:            "op-3",
			Code:          "CSHOUT-FEE",
			BasisCode:     "CSHOUT",
			IncludedWords: []string{"teenustasu"},
		},
	}

	tests := []struct {
		name      string
		basisCode string
		freeText  string
		want      string // expected code, "" for no match
	}{
		{
			name:      "included word matches case-insensitively",
			basisCode: "CSHIN",
			freeText:  "Arve 42 tasumine",
			want:      "CSHIN-INV",
		},
		{
			name:      "excluded word blocks, next rule catches",
			basisCode: "CSHIN",
			freeText:  "arve tagastus",
			want:      "CSHIN-ANY",
		},
		{
			name:      "empty included words accept any text",
			basisCode: "CSHIN",
			freeText:  "midagi muud",
			want:      "CSHIN-ANY",
		},
		{
			name:      "first matching rule wins",
			basisCode: "CSHIN",
			freeText:  "invoice 7",
			want:      "CSHIN-INV",
		},
		{
			name:      "basis code filters rules",
			basisCode: "CSHOUT",
			freeText:  "teenustasu jaanuar",
			want:      "CSHOUT-FEE",
		},
		{
			name:      "no rule for basis",
			basisCode: "SCRIN",
			freeText:  "something",
			want:      "",
		},
		{
			name:      "text too short is never classified",
			basisCode: "CSHIN",
			freeText:  "ab",
			want:      "",
		},
		{
			name:      "empty text is never classified",
			basisCode: "CSHIN",
			freeText:  "",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recognize.Classify(ops, tt.basisCode, tt.freeText)

			if tt.want == "" {
				assert.Nil(t, got)
				return
			}

			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, got.Code)
			}
		})
	}
}
