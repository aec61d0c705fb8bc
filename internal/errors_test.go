package internal_test

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal"
)

type teapotError struct{}

func (teapotError) Error() string   { return "short and stout" }
func (teapotError) StatusCode() int { return http.StatusTeapot }

type emptyError struct{}

func (emptyError) Error() string { return "" }

type legacyStatusError struct{ status int }

func (e legacyStatusError) Error() string { return "legacy" }
func (e legacyStatusError) Status() int   { return e.status }

var _ = Describe("ParseError", func() {
	It("should return the generic message and 500 for a fault without fields", func() {
		info := internal.ParseError(emptyError{})

		Expect(info.Message).To(Equal("An error occurred"))
		Expect(info.Status).To(Equal(500))
	})

	It("should return the defaults for a nil error", func() {
		info := internal.ParseError(nil)

		Expect(info).To(Equal(internal.ErrorInfo{Message: "An error occurred", Status: 500}))
	})

	It("should keep the message of a plain error with status 500", func() {
		info := internal.ParseError(errors.New("boom"))

		Expect(info.Message).To(Equal("boom"))
		Expect(info.Status).To(Equal(http.StatusInternalServerError))
	})

	It("should read message and status from an AppError", func() {
		info := internal.ParseError(internal.ErrExpenseNotFound)

		Expect(info.Message).To(Equal("Expense not found"))
		Expect(info.Status).To(Equal(http.StatusNotFound))
	})

	It("should find an AppError through wrapping", func() {
		err := fmt.Errorf("loading: %w", internal.ErrTokenExpired)

		info := internal.ParseError(err)

		Expect(info.Status).To(Equal(http.StatusUnauthorized))
		Expect(info.Message).To(Equal("Token has expired"))
	})

	It("should honour errors exposing StatusCode()", func() {
		info := internal.ParseError(teapotError{})

		Expect(info.Message).To(Equal("short and stout"))
		Expect(info.Status).To(Equal(http.StatusTeapot))
	})

	It("should honour errors exposing Status()", func() {
		info := internal.ParseError(legacyStatusError{status: http.StatusConflict})

		Expect(info.Status).To(Equal(http.StatusConflict))
	})

	It("should ignore a zero status", func() {
		info := internal.ParseError(legacyStatusError{})

		Expect(info.Status).To(Equal(500))
	})

	It("should keep the public message of an internal error and hide its cause", func() {
		err := internal.NewInternalError(internal.DefaultErrorMessage, errors.New("panic: nil map"))

		info := internal.ParseError(err)

		Expect(info.Status).To(Equal(http.StatusInternalServerError))
		Expect(info.Message).To(Equal("An error occurred"))
		Expect(errors.Unwrap(err)).To(MatchError("panic: nil map"))
	})

	It("should join validation details into the message", func() {
		err := internal.NewValidationFieldError("monthlyBudget", "monthly budget must be positive", internal.ErrCodeInvalidBudget)

		info := internal.ParseError(err)

		Expect(info.Status).To(Equal(http.StatusBadRequest))
		Expect(info.Message).To(Equal("monthly budget must be positive"))
	})
})
