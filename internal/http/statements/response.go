package statements

import (
	"time"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

type statementResponse struct {
	ID             string                `json:"id"`
	AccountType    statement.AccountType `json:"account_type"`
	BankID         string                `json:"bank_id"`
	BankCode       string                `json:"bank_code,omitempty"`
	FileName       string                `json:"file_name"`
	FromDate       time.Time             `json:"from_date"`
	ToDate         time.Time             `json:"to_date"`
	Status         statement.Status      `json:"status"`
	RowCount       int                   `json:"row_count"`
	DuplicateCount int                   `json:"duplicate_count"`
	TotalCount     int                   `json:"total_count"`
	ErrorMessage   string                `json:"error_message,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(st *statement.Statement) statementResponse {
	return statementResponse{
		ID:             st.ID,
		AccountType:    st.AccountType,
		BankID:         st.BankID,
		BankCode:       st.BankCode,
		FileName:       st.FileName,
		FromDate:       st.FromDate,
		ToDate:         st.ToDate,
		Status:         st.Status,
		RowCount:       st.RowCount,
		DuplicateCount: st.DuplicateCount,
		TotalCount:     st.TotalCount,
		ErrorMessage:   st.ErrorMessage,
		CreatedAt:      st.CreatedAt,
		UpdatedAt:      st.UpdatedAt,
	}
}
