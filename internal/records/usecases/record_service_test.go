package usecases_test

import (
	"context"
	"errors"

	"scout-server/internal/records/domain"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RecordService", func() {
	var (
		ctx    context.Context
		h      *harness
		admin  shareddomain.User
		reader shareddomain.User
		table  domain.Table
		fields map[string]domain.Field
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		admin = h.user(ctx, "akela", shareddomain.RoleAdmin)
		reader = h.user(ctx, "mowgli", shareddomain.RoleReadonly)

		var err error
		table, err = h.schema.CreateTable(ctx, usecases.TableInput{Name: "membres", DisplayName: "Membres"})
		Expect(err).NotTo(HaveOccurred())

		fields = map[string]domain.Field{}
		for _, input := range []usecases.FieldInput{
			{Name: "nom", DisplayName: "Nom", Type: domain.FieldTypeText, Required: true},
			{Name: "code", DisplayName: "Code", Type: domain.FieldTypeText, Unique: true},
			{Name: "age", DisplayName: "Âge", Type: domain.FieldTypeNumber},
			{Name: "naissance", DisplayName: "Naissance", Type: domain.FieldTypeDate},
			{Name: "unite", DisplayName: "Unité", Type: domain.FieldTypeDropdown, Options: "Louveteaux\nScouts"},
		} {
			field, err := h.schema.CreateField(ctx, table.ID, input)
			Expect(err).NotTo(HaveOccurred())
			fields[field.Name] = field
		}
	})

	countRecords := func() int {
		_, total, err := h.records.ListRecords(ctx, admin.ID, table.ID, usecases.Pagination{Limit: 50})
		Expect(err).NotTo(HaveOccurred())
		return total
	}

	Context("CreateRecord", func() {
		It("stores typed values and reads them back by field name", func() {
			view, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{
				"nom":       ptr("Jean"),
				"age":       ptr("12"),
				"naissance": ptr("2012-05-01"),
				"unite":     ptr("Louveteaux"),
				"unknown":   ptr("ignored"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(view.CreatedByUsername).To(Equal("akela"))

			stored, err := h.records.GetRecord(ctx, admin.ID, table.ID, view.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Values).To(Equal(map[string]any{
				"nom":       "Jean",
				"code":      nil,
				"age":       12.0,
				"naissance": "2012-05-01",
				"unite":     "Louveteaux",
			}))
			Expect(stored.CreatedByUsername).To(Equal("akela"))
		})

		It("rejects a missing required value without writing anything", func() {
			_, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{
				"nom": ptr("   "),
				"age": ptr("12"),
			})

			var required *shareddomain.RequiredFieldError
			Expect(errors.As(err, &required)).To(BeTrue())
			Expect(required.Field).To(Equal("Nom"))
			Expect(countRecords()).To(BeZero())
		})

		It("rejects values that do not fit the field type", func() {
			_, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{
				"nom": ptr("Jean"),
				"age": ptr("douze"),
			})

			Expect(errors.Is(err, shareddomain.ErrTypeCoercion)).To(BeTrue())
			Expect(countRecords()).To(BeZero())
		})

		It("enforces unique text values but allows them empty", func() {
			_, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Jean"), "code": ptr("A1")})
			Expect(err).NotTo(HaveOccurred())

			_, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Paul"), "code": ptr("A1")})
			var unique *shareddomain.UniqueConstraintError
			Expect(errors.As(err, &unique)).To(BeTrue())
			Expect(unique.Field).To(Equal("Code"))
			Expect(unique.Value).To(Equal("A1"))

			_, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Marie"), "code": ptr("")})
			Expect(err).NotTo(HaveOccurred())
			_, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Luc"), "code": ptr("")})
			Expect(err).NotTo(HaveOccurred())

			Expect(countRecords()).To(Equal(3))
		})

		It("fails for an unknown table", func() {
			_, err := h.records.CreateRecord(ctx, "ghost", admin.ID, domain.RawValues{})
			Expect(errors.Is(err, usecases.ErrTableNotFound)).To(BeTrue())
		})
	})

	Context("UpdateRecord", func() {
		It("overwrites every field and clears the omitted ones", func() {
			created, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{
				"nom": ptr("Jean"),
				"age": ptr("12"),
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := h.records.UpdateRecord(ctx, table.ID, created.ID, domain.RawValues{
				"nom": ptr("Jean-Pierre"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Values["nom"]).To(Equal("Jean-Pierre"))
			Expect(updated.Values["age"]).To(BeNil())
			Expect(updated.ModifiedAt).NotTo(BeTemporally("<", created.ModifiedAt))

			stored, err := h.records.GetRecord(ctx, admin.ID, table.ID, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Values["age"]).To(BeNil())
		})

		It("does not check uniqueness", func() {
			_, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Jean"), "code": ptr("A1")})
			Expect(err).NotTo(HaveOccurred())
			other, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Paul"), "code": ptr("B2")})
			Expect(err).NotTo(HaveOccurred())

			_, err = h.records.UpdateRecord(ctx, table.ID, other.ID, domain.RawValues{"nom": ptr("Paul"), "code": ptr("A1")})
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails for a record of another table", func() {
			created, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Jean")})
			Expect(err).NotTo(HaveOccurred())

			_, err = h.records.UpdateRecord(ctx, "other", created.ID, domain.RawValues{})
			Expect(errors.Is(err, usecases.ErrRecordNotFound)).To(BeTrue())
		})
	})

	It("deletes a record", func() {
		created, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Jean")})
		Expect(err).NotTo(HaveOccurred())

		Expect(h.records.DeleteRecord(ctx, table.ID, created.ID)).To(Succeed())

		_, err = h.records.GetRecord(ctx, admin.ID, table.ID, created.ID)
		Expect(errors.Is(err, shareddomain.ErrNotFound)).To(BeTrue())
		Expect(errors.Is(h.records.DeleteRecord(ctx, table.ID, created.ID), usecases.ErrRecordNotFound)).To(BeTrue())
	})

	Context("visibility", func() {
		var jean, paul domain.RecordView

		BeforeEach(func() {
			var err error
			jean, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Jean")})
			Expect(err).NotTo(HaveOccurred())
			paul, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"nom": ptr("Paul")})
			Expect(err).NotTo(HaveOccurred())
		})

		It("hides every record from a readonly user without rules", func() {
			views, total, err := h.records.ListRecords(ctx, reader.ID, table.ID, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(views).To(BeEmpty())

			_, err = h.records.GetRecord(ctx, reader.ID, table.ID, jean.ID)
			Expect(errors.Is(err, usecases.ErrRecordNotVisible)).To(BeTrue())
			Expect(errors.Is(err, shareddomain.ErrForbidden)).To(BeTrue())
		})

		It("shows the records matched by the user's rules", func() {
			_, err := h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{
				UserID:     reader.ID,
				FieldID:    fields["nom"].ID,
				MatchValue: "Jean",
			})
			Expect(err).NotTo(HaveOccurred())

			views, total, err := h.records.ListRecords(ctx, reader.ID, table.ID, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(views[0].ID).To(Equal(jean.ID))

			_, err = h.records.GetRecord(ctx, reader.ID, table.ID, paul.ID)
			Expect(errors.Is(err, usecases.ErrRecordNotVisible)).To(BeTrue())
		})

		It("pages through the newest records first", func() {
			views, total, err := h.records.ListRecords(ctx, admin.ID, table.ID, usecases.Pagination{Limit: 1, Offset: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(2))
			Expect(views).To(HaveLen(1))
		})
	})
})
