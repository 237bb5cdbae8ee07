package http

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"ngobooks-backend/internal/service"
)

type ExpenseHandler struct {
	expenseSvc  service.ExpenseService
	maxFileSize int64
}

func NewExpenseHandler(expenseSvc service.ExpenseService, maxFileSizeMB int64) *ExpenseHandler {
	return &ExpenseHandler{
		expenseSvc:  expenseSvc,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Create accepts multipart form data so a receipt image can ride along with
// the expense fields.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	amount, err := strconv.ParseInt(r.FormValue("amount"), 10, 64)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid amount")
		return
	}
	by := r.FormValue("by")
	if len(strings.TrimSpace(by)) < 2 {
		writeFail(w, http.StatusBadRequest, "Paid-by must be at least 2 characters")
		return
	}
	if r.FormValue("date") == "" {
		writeFail(w, http.StatusBadRequest, "Date is required")
		return
	}

	params := service.ExpenseParams{
		Date:     r.FormValue("date"),
		By:       by,
		Amount:   amount,
		Category: r.FormValue("category"),
		Note:     r.FormValue("note"),
	}

	var receipt *service.ReceiptUpload
	if file, header, err := r.FormFile("receipt"); err == nil {
		defer file.Close()
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			writeFail(w, http.StatusBadRequest, "Receipt must be an image")
			return
		}
		data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize))
		if err != nil {
			writeFail(w, http.StatusBadRequest, "Failed to read receipt image")
			return
		}
		receipt = &service.ReceiptUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Data:        data,
		}
	}

	expense, err := h.expenseSvc.CreateExpense(r.Context(), actorFrom(r), params, receipt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"expense": expense})
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseSvc.ListExpenses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"expenses": expenses})
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.expenseSvc.DeleteExpense(r.Context(), actorFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeOK(w, map[string]any{"message": "Expense deleted"})
}
