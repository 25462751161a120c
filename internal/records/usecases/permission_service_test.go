package usecases_test

import (
	"context"
	"errors"

	"scout-server/internal/records/domain"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedusecases "scout-server/internal/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PermissionService", func() {
	var (
		ctx     context.Context
		h       *harness
		admin   shareddomain.User
		editor  shareddomain.User
		reader  shareddomain.User
		table   domain.Table
		nom     domain.Field
		records map[string]shareddomain.ID
	)

	BeforeEach(func() {
		ctx = context.Background()
		h = newHarness()
		admin = h.user(ctx, "akela", shareddomain.RoleAdmin)
		editor = h.user(ctx, "baloo", shareddomain.RoleEditor)
		reader = h.user(ctx, "mowgli", shareddomain.RoleReadonly)

		var err error
		table, err = h.schema.CreateTable(ctx, usecases.TableInput{Name: "cotisation"})
		Expect(err).NotTo(HaveOccurred())
		nom, err = h.schema.CreateField(ctx, table.ID, usecases.FieldInput{Name: "scout", Type: domain.FieldTypeText})
		Expect(err).NotTo(HaveOccurred())

		records = map[string]shareddomain.ID{}
		for _, name := range []string{"Jean", "Marie", "Paul"} {
			view, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"scout": ptr(name)})
			Expect(err).NotTo(HaveOccurred())
			records[name] = view.ID
		}
	})

	addMatch := func(value string) domain.PermissionRule {
		rule, err := h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{
			UserID:     reader.ID,
			FieldID:    nom.ID,
			MatchValue: value,
		})
		Expect(err).NotTo(HaveOccurred())
		return rule
	}

	It("gives editors and admins the whole table", func() {
		for _, user := range []shareddomain.User{admin, editor} {
			visibility, err := h.permissions.VisibleRecordIDs(ctx, user.ID, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visibility.All).To(BeTrue())
		}
	})

	It("unions the records matched by every rule", func() {
		addMatch("Jean")
		addMatch("Marie")
		addMatch("Nobody")

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.All).To(BeFalse())
		Expect(visibility.IDs()).To(ConsistOf(records["Jean"], records["Marie"]))
	})

	It("lists a record matched by rules on two fields once", func() {
		groupe, err := h.schema.CreateField(ctx, table.ID, usecases.FieldInput{Name: "groupe", Type: domain.FieldTypeText})
		Expect(err).NotTo(HaveOccurred())

		luc, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"scout": ptr("Luc"), "groupe": ptr("Loups")})
		Expect(err).NotTo(HaveOccurred())
		anne, err := h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"scout": ptr("Anne"), "groupe": ptr("Loups")})
		Expect(err).NotTo(HaveOccurred())
		_, err = h.records.CreateRecord(ctx, table.ID, admin.ID, domain.RawValues{"scout": ptr("Zoe"), "groupe": ptr("Pionniers")})
		Expect(err).NotTo(HaveOccurred())

		addMatch("Luc")
		_, err = h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{
			UserID:     reader.ID,
			FieldID:    groupe.ID,
			MatchValue: "Loups",
		})
		Expect(err).NotTo(HaveOccurred())

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.IDs()).To(ConsistOf(luc.ID, anne.ID))

		listed, total, err := h.records.ListRecords(ctx, reader.ID, table.ID, usecases.Pagination{Limit: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))
		Expect(listed).To(HaveLen(2))
	})

	It("lets an all access row win over specific rules stored next to it", func() {
		addMatch("Jean")

		allAccess, err := domain.NewPermissionRuleBuilder().
			WithUserID(reader.ID).
			WithTableID(table.ID).
			WithAllAccess().
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(h.permissionRepository.AddRule(ctx, allAccess)).To(Succeed())

		rules, err := h.permissions.ListRules(ctx, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(2))

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.All).To(BeTrue())
		Expect(visibility.Contains(records["Paul"])).To(BeTrue())
	})

	It("matches the text exactly", func() {
		addMatch("jean")

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.IsEmpty()).To(BeTrue())
	})

	It("replaces specific rules when all access is granted", func() {
		addMatch("Jean")
		addMatch("Marie")

		_, err := h.permissions.GrantAllAccess(ctx, table.ID, reader.ID)
		Expect(err).NotTo(HaveOccurred())

		rules, err := h.permissions.ListRules(ctx, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(1))
		Expect(rules[0].AllAccess).To(BeTrue())

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.All).To(BeTrue())
	})

	It("treats an all access request on add as a replacement", func() {
		addMatch("Jean")

		_, err := h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{UserID: reader.ID, AllAccess: true})
		Expect(err).NotTo(HaveOccurred())

		rules, err := h.permissions.ListRules(ctx, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(rules).To(HaveLen(1))
	})

	Context("BulkGrant", func() {
		var scout shareddomain.User

		BeforeEach(func() {
			scout = h.user(ctx, "bagheera", shareddomain.RoleReadonly)
		})

		It("gives every listed user all access once", func() {
			addMatch("Jean")

			rules, err := h.permissions.BulkGrant(ctx, table.ID, []shareddomain.ID{reader.ID, scout.ID, reader.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(HaveLen(2))

			stored, err := h.permissions.ListRules(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(2))
			for _, rule := range stored {
				Expect(rule.AllAccess).To(BeTrue())
			}
		})

		It("applies nothing when one user is unknown", func() {
			addMatch("Jean")

			_, err := h.permissions.BulkGrant(ctx, table.ID, []shareddomain.ID{scout.ID, "ghost", reader.ID})
			Expect(errors.Is(err, sharedusecases.ErrUserNotFound)).To(BeTrue())

			stored, err := h.permissions.ListRules(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(HaveLen(1))
			Expect(stored[0].UserID).To(Equal(reader.ID))
			Expect(stored[0].AllAccess).To(BeFalse())

			visibility, err := h.permissions.VisibleRecordIDs(ctx, scout.ID, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visibility.IsEmpty()).To(BeTrue())
		})

		It("refuses an unknown table", func() {
			_, err := h.permissions.BulkGrant(ctx, "missing", nil)
			Expect(errors.Is(err, usecases.ErrTableNotFound)).To(BeTrue())
		})
	})

	It("rejects rules on a field of another table", func() {
		other, err := h.schema.CreateTable(ctx, usecases.TableInput{Name: "accident"})
		Expect(err).NotTo(HaveOccurred())

		_, err = h.permissions.AddRule(ctx, other.ID, usecases.RuleInput{
			UserID:     reader.ID,
			FieldID:    nom.ID,
			MatchValue: "Jean",
		})
		Expect(errors.Is(err, usecases.ErrFieldNotFound)).To(BeTrue())
	})

	It("rejects rules for unknown users and incomplete matches", func() {
		_, err := h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{UserID: "ghost", AllAccess: true})
		Expect(errors.Is(err, sharedusecases.ErrUserNotFound)).To(BeTrue())

		_, err = h.permissions.AddRule(ctx, table.ID, usecases.RuleInput{UserID: reader.ID, FieldID: nom.ID})
		Expect(errors.Is(err, shareddomain.ErrInvalidInput)).To(BeTrue())
	})

	It("deletes a rule", func() {
		rule := addMatch("Jean")

		Expect(h.permissions.DeleteRule(ctx, table.ID, rule.ID)).To(Succeed())
		Expect(errors.Is(h.permissions.DeleteRule(ctx, table.ID, rule.ID), usecases.ErrPermissionNotFound)).To(BeTrue())

		visibility, err := h.permissions.VisibleRecordIDs(ctx, reader.ID, table.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(visibility.IsEmpty()).To(BeTrue())
	})
})
