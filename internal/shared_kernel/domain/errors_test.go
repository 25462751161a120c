package domain_test

import (
	"errors"
	"fmt"

	"scout-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Field errors", func() {
	It("unwraps to their sentinels through wrapping", func() {
		unique := fmt.Errorf("creating record: %w", &domain.UniqueConstraintError{Field: "Scout", Value: "Jean"})
		required := fmt.Errorf("creating record: %w", &domain.RequiredFieldError{Field: "Montant"})
		coercion := fmt.Errorf("creating record: %w", &domain.TypeCoercionError{Field: "Montant", FieldType: "number", Value: "abc"})

		Expect(errors.Is(unique, domain.ErrUniqueConstraint)).To(BeTrue())
		Expect(errors.Is(required, domain.ErrRequiredField)).To(BeTrue())
		Expect(errors.Is(coercion, domain.ErrTypeCoercion)).To(BeTrue())
		Expect(errors.Is(coercion, domain.ErrRequiredField)).To(BeFalse())
	})

	It("exposes the offending field", func() {
		var target *domain.RequiredFieldError
		err := fmt.Errorf("wrapped: %w", &domain.RequiredFieldError{Field: "Lieu"})

		Expect(errors.As(err, &target)).To(BeTrue())
		Expect(target.Field).To(Equal("Lieu"))
		Expect(err.Error()).To(ContainSubstring("field 'Lieu' is required"))
	})
})
