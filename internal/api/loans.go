package api

import (
	"errors"
	"math"
	"net/http"

	"github.com/tribeworks/loanflow/internal/api/validation"
	"github.com/tribeworks/loanflow/internal/loan"
)

// EndpointStartLoanProcess handles the 'POST /api/loans/start?creditScore={number?}' endpoint.
// The submitted credit score is optional; the credit check step assumes a default
// score when none is given.
func (service *Service) EndpointStartLoanProcess(writer http.ResponseWriter, request *http.Request) {
	creditScore, validationErr := validation.QueryOptionalNumber(request, "creditScore", loan.MinCreditScore, loan.MaxCreditScore)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	// Start a new process instance with the submitted variables
	variables := map[string]any{}
	if creditScore != nil {
		variables["creditScore"] = int(*creditScore)
	}
	instance := service.Engine.Start(variables)

	// Persist the resulting loan application
	applicant, _ := request.Context().Value(contextValueUsername).(string)
	score, ok := instance.Variables["creditScore"].(int)
	if !ok {
		service.writer.WriteInternalError(writer, errors.New("process instance completed without a credit score"))
		return
	}
	status := loan.StatusManualReview
	if instance.Variables["approvalStatus"] == "APPROVED" {
		status = loan.StatusAutoApproved
	}
	if _, err := service.Storage.LoanApplications().Create(request.Context(), &loan.Create{
		Applicant:          applicant,
		CreditScore:        score,
		Status:             status,
		ProcessInstanceKey: instance.ProcessInstanceKey,
	}); err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, &loan.ProcessResult{
		ProcessInstanceKey: instance.ProcessInstanceKey,
		BPMNProcessID:      instance.BPMNProcessID,
		Version:            instance.Version,
		Variables:          instance.Variables,
	})
}

// EndpointGetLoanApplications handles the 'GET /api/loans?offset={number?:0}&limit={number?:10}' endpoint
func (service *Service) EndpointGetLoanApplications(writer http.ResponseWriter, request *http.Request) {
	offset, validationErr := validation.QueryOptionalNumber(request, "offset", 0, math.MaxInt64)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}
	limit, validationErr := validation.QueryOptionalNumber(request, "limit", 1, 1000)
	if validationErr != nil {
		service.writer.WriteErrors(writer, http.StatusBadRequest, validationErr)
		return
	}

	effectiveOffset := uint64(0)
	if offset != nil {
		effectiveOffset = uint64(*offset)
	}
	effectiveLimit := uint64(10)
	if limit != nil {
		effectiveLimit = uint64(*limit)
	}

	applications, total, err := service.Storage.LoanApplications().Get(request.Context(), effectiveOffset, effectiveLimit)
	if err != nil {
		service.writer.WriteInternalError(writer, err)
		return
	}

	service.writer.WriteJSON(writer, map[string]any{
		"applications": applications,
		"total":        total,
	})
}
