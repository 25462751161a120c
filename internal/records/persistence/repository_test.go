package persistence_test

import (
	"context"
	"errors"
	"time"

	"scout-server/internal/infra/sql"
	"scout-server/internal/infra/utils"
	"scout-server/internal/records/domain"
	"scout-server/internal/records/persistence"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Records repositories", func() {
	var (
		ctx         context.Context
		schema      *persistence.SimpleSchemaRepository
		values      *persistence.SimpleValueStore
		records     *persistence.SimpleRecordRepository
		permissions *persistence.SimplePermissionRepository

		table  domain.Table
		fields []domain.Field
	)

	BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())

		schema, err = persistence.NewSchemaRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		values, err = persistence.NewValueStore(orm)
		Expect(err).NotTo(HaveOccurred())
		records, err = persistence.NewRecordRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		permissions, err = persistence.NewPermissionRepository(orm)
		Expect(err).NotTo(HaveOccurred())

		table, fields, err = domain.DefaultTables()[2].Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(schema.CreateTable(ctx, table, fields)).To(Succeed())
	})

	fieldNamed := func(name string) domain.Field {
		for _, field := range fields {
			if field.Name == name {
				return field
			}
		}
		Fail("unknown field " + name)
		return domain.Field{}
	}

	createRecord := func(raw domain.RawValues) domain.Record {
		record := domain.NewRecord(table.ID, "creator")
		var fieldValues []domain.FieldValue
		for name, text := range raw {
			field := fieldNamed(name)
			value, err := field.Coerce(text)
			Expect(err).NotTo(HaveOccurred())
			fieldValues = append(fieldValues, domain.FieldValue{Field: field, Value: value})
		}
		Expect(records.CreateRecord(ctx, record, fieldValues)).To(Succeed())
		return record
	}

	Context("schema", func() {
		It("stores the table with its ordered fields", func() {
			stored, err := schema.GetTableByName(ctx, "cotisation")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ID).To(Equal(table.ID))

			listed, err := schema.ListFields(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(4))
			Expect(listed[0].Name).To(Equal("scout"))
			Expect(listed[3].Options).To(ConsistOf("Espèces", "Chèque", "Virement bancaire", "Autre"))

			max, err := schema.MaxFieldOrder(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(max).To(Equal(4))
		})

		It("reorders only the fields of the given table", func() {
			other, otherFields, err := domain.DefaultTables()[1].Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(schema.CreateTable(ctx, other, otherFields)).To(Succeed())

			Expect(schema.ReorderFields(ctx, table.ID, map[shareddomain.ID]int{
				fields[0].ID:      4,
				fields[3].ID:      1,
				otherFields[0].ID: 9,
			})).To(Succeed())

			listed, err := schema.ListFields(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed[0].Name).To(Equal("methode_paiement"))
			Expect(listed[3].Name).To(Equal("scout"))

			untouched, err := schema.GetField(ctx, otherFields[0].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(untouched.Order).To(Equal(1))
		})

		It("maps missing rows to sentinels", func() {
			_, err := schema.GetTable(ctx, "ghost")
			Expect(errors.Is(err, usecases.ErrTableNotFound)).To(BeTrue())

			_, err = schema.GetFieldByName(ctx, table.ID, "ghost")
			Expect(errors.Is(err, usecases.ErrFieldNotFound)).To(BeTrue())

			Expect(errors.Is(schema.DeleteField(ctx, "ghost"), usecases.ErrFieldNotFound)).To(BeTrue())
		})

		It("removes the values of a deleted field and keeps the siblings", func() {
			record := createRecord(domain.RawValues{
				"scout":   utils.StringPtr("Jean"),
				"montant": utils.StringPtr("25.50"),
			})

			Expect(schema.DeleteField(ctx, fieldNamed("montant").ID)).To(Succeed())

			stored, err := values.ValuesByRecord(ctx, []shareddomain.ID{record.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored[record.ID]).To(HaveLen(1))
			Expect(*stored[record.ID][fieldNamed("scout").ID].Text).To(Equal("Jean"))
		})

		It("cascades a table deletion to records, values and rules", func() {
			record := createRecord(domain.RawValues{"scout": utils.StringPtr("Jean")})
			rule, err := domain.NewPermissionRuleBuilder().
				WithUserID("reader").
				WithTableID(table.ID).
				WithAllAccess().
				Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(permissions.AddRule(ctx, rule)).To(Succeed())

			Expect(schema.DeleteTable(ctx, table.ID)).To(Succeed())

			_, err = records.GetRecord(ctx, table.ID, record.ID)
			Expect(errors.Is(err, usecases.ErrRecordNotFound)).To(BeTrue())

			stored, err := values.ValuesByRecord(ctx, []shareddomain.ID{record.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeEmpty())

			rules, err := permissions.ListRules(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(BeEmpty())

			listed, err := schema.ListFields(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(BeEmpty())

			Expect(errors.Is(schema.DeleteTable(ctx, table.ID), usecases.ErrTableNotFound)).To(BeTrue())
		})
	})

	Context("values", func() {
		It("stores each value in the slot of its field type", func() {
			record := createRecord(domain.RawValues{
				"scout":         utils.StringPtr("Jean"),
				"montant":       utils.StringPtr("25.50"),
				"date_paiement": utils.StringPtr("2024-01-15"),
			})

			amount, err := values.GetValue(ctx, record.ID, fieldNamed("montant"))
			Expect(err).NotTo(HaveOccurred())
			Expect(amount).To(Equal(25.5))

			paid, err := values.GetValue(ctx, record.ID, fieldNamed("date_paiement"))
			Expect(err).NotTo(HaveOccurred())
			Expect(paid).To(Equal("2024-01-15"))

			method, err := values.GetValue(ctx, record.ID, fieldNamed("methode_paiement"))
			Expect(err).NotTo(HaveOccurred())
			Expect(method).To(BeNil())
		})

		It("keeps a single row per record and field across writes", func() {
			record := createRecord(domain.RawValues{"montant": utils.StringPtr("10")})

			Expect(values.SetValue(ctx, record.ID, fieldNamed("montant"), utils.StringPtr("12.5"))).To(Succeed())
			Expect(values.SetValue(ctx, record.ID, fieldNamed("montant"), nil)).To(Succeed())

			stored, err := values.ValuesByRecord(ctx, []shareddomain.ID{record.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored[record.ID]).To(HaveLen(1))
			Expect(stored[record.ID][fieldNamed("montant").ID].Number).To(BeNil())
		})

		It("rejects values that do not coerce", func() {
			record := createRecord(domain.RawValues{})

			err := values.SetValue(ctx, record.ID, fieldNamed("montant"), utils.StringPtr("abc"))
			Expect(errors.Is(err, shareddomain.ErrTypeCoercion)).To(BeTrue())
		})

		It("finds records by exact text within the table", func() {
			first := createRecord(domain.RawValues{"scout": utils.StringPtr("Jean")})
			createRecord(domain.RawValues{"scout": utils.StringPtr("jean")})

			ids, err := values.RecordIDsWithText(ctx, table.ID, fieldNamed("scout").ID, "Jean")
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(ConsistOf(first.ID))

			exists, err := values.TextExists(ctx, table.ID, fieldNamed("scout").ID, "Marie")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Context("records", func() {
		It("pages through visible records newest first", func() {
			var created []domain.Record
			for i := 0; i < 3; i++ {
				record := domain.NewRecord(table.ID, "creator")
				record.CreatedAt = time.Date(2024, 1, 10+i, 9, 0, 0, 0, time.UTC)
				Expect(records.CreateRecord(ctx, record, nil)).To(Succeed())
				created = append(created, record)
			}

			page, total, err := records.ListRecords(ctx,
				[]usecases.RecordScope{{TableID: table.ID, Visibility: domain.AllRecords()}},
				usecases.Pagination{Limit: 2},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(page).To(HaveLen(2))
			Expect(page[0].ID).To(Equal(created[2].ID))

			visibility := domain.NoRecords()
			visibility.Add(created[0].ID)
			page, total, err = records.ListRecords(ctx,
				[]usecases.RecordScope{{TableID: table.ID, Visibility: visibility}},
				usecases.Pagination{},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(page[0].ID).To(Equal(created[0].ID))
		})

		It("returns nothing for empty scopes", func() {
			createRecord(domain.RawValues{})

			page, total, err := records.ListRecords(ctx,
				[]usecases.RecordScope{{TableID: table.ID, Visibility: domain.NoRecords()}},
				usecases.Pagination{Limit: 10},
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(page).To(BeEmpty())
		})

		It("deletes a record with its values", func() {
			record := createRecord(domain.RawValues{"scout": utils.StringPtr("Jean")})

			Expect(records.DeleteRecord(ctx, table.ID, record.ID)).To(Succeed())
			Expect(errors.Is(records.DeleteRecord(ctx, table.ID, record.ID), usecases.ErrRecordNotFound)).To(BeTrue())

			stored, err := values.ValuesByRecord(ctx, []shareddomain.ID{record.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).To(BeEmpty())
		})

		It("counts records per table and exposes creation times", func() {
			createRecord(domain.RawValues{})
			createRecord(domain.RawValues{})

			counts, err := records.CountByTable(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(map[shareddomain.ID]int{table.ID: 2}))

			times, err := records.CreationTimes(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(times).To(HaveLen(2))
		})
	})

	Context("permissions", func() {
		matchRule := func(user shareddomain.ID, text string) domain.PermissionRule {
			rule, err := domain.NewPermissionRuleBuilder().
				WithUserID(user).
				WithTableID(table.ID).
				WithMatch(fieldNamed("scout").ID, text).
				Build()
			Expect(err).NotTo(HaveOccurred())
			return rule
		}

		It("lists the rules of a user on a table", func() {
			Expect(permissions.AddRule(ctx, matchRule("reader", "Jean"))).To(Succeed())
			Expect(permissions.AddRule(ctx, matchRule("reader", "Marie"))).To(Succeed())
			Expect(permissions.AddRule(ctx, matchRule("other", "Paul"))).To(Succeed())

			rules, err := permissions.RulesFor(ctx, "reader", table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(HaveLen(2))

			all, err := permissions.ListRules(ctx, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
		})

		It("replaces every rule of the user with a single one", func() {
			Expect(permissions.AddRule(ctx, matchRule("reader", "Jean"))).To(Succeed())
			Expect(permissions.AddRule(ctx, matchRule("reader", "Marie"))).To(Succeed())

			allAccess, err := domain.NewPermissionRuleBuilder().
				WithUserID("reader").
				WithTableID(table.ID).
				WithAllAccess().
				Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(permissions.ReplaceRules(ctx, []domain.PermissionRule{allAccess})).To(Succeed())

			rules, err := permissions.RulesFor(ctx, "reader", table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(HaveLen(1))
			Expect(rules[0].AllAccess).To(BeTrue())
			Expect(rules[0].FieldID).To(BeNil())
		})

		It("rolls the whole batch back when one replacement fails", func() {
			Expect(permissions.AddRule(ctx, matchRule("reader", "Jean"))).To(Succeed())
			Expect(permissions.AddRule(ctx, matchRule("other", "Paul"))).To(Succeed())

			forReader, err := domain.NewPermissionRuleBuilder().
				WithUserID("reader").
				WithTableID(table.ID).
				WithAllAccess().
				Build()
			Expect(err).NotTo(HaveOccurred())
			clashing := forReader
			clashing.UserID = "other"

			err = permissions.ReplaceRules(ctx, []domain.PermissionRule{forReader, clashing})
			Expect(err).To(HaveOccurred())

			readerRules, err := permissions.RulesFor(ctx, "reader", table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(readerRules).To(HaveLen(1))
			Expect(readerRules[0].AllAccess).To(BeFalse())

			otherRules, err := permissions.RulesFor(ctx, "other", table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(otherRules).To(HaveLen(1))
			Expect(*otherRules[0].MatchValue).To(Equal("Paul"))
		})

		It("deletes a rule only within its table", func() {
			rule := matchRule("reader", "Jean")
			Expect(permissions.AddRule(ctx, rule)).To(Succeed())

			err := permissions.DeleteRule(ctx, "other-table", rule.ID)
			Expect(errors.Is(err, usecases.ErrPermissionNotFound)).To(BeTrue())

			Expect(permissions.DeleteRule(ctx, table.ID, rule.ID)).To(Succeed())
		})
	})
})
