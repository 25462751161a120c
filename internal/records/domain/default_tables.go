package domain

type FieldTemplate struct {
	Name        string
	DisplayName string
	Type        FieldType
	Options     []string
}

type TableTemplate struct {
	Name        string
	DisplayName string
	Fields      []FieldTemplate
}

// DefaultTables are created at startup when missing. Every field is required.
func DefaultTables() []TableTemplate {
	return []TableTemplate{
		{
			Name:        "autorisation_camp",
			DisplayName: "Autorisation de Camp",
			Fields: []FieldTemplate{
				{Name: "nom_camp", DisplayName: "Nom du camp", Type: FieldTypeText},
				{Name: "date_debut", DisplayName: "Date de début", Type: FieldTypeDate},
				{Name: "date_fin", DisplayName: "Date de fin", Type: FieldTypeDate},
				{Name: "lieu", DisplayName: "Lieu", Type: FieldTypeText},
				{Name: "responsable", DisplayName: "Responsable", Type: FieldTypeText},
			},
		},
		{
			Name:        "accident",
			DisplayName: "Accident",
			Fields: []FieldTemplate{
				{Name: "date", DisplayName: "Date", Type: FieldTypeDate},
				{Name: "lieu", DisplayName: "Lieu", Type: FieldTypeText},
				{Name: "scout_affecte", DisplayName: "Scout affecté", Type: FieldTypeText},
				{Name: "description", DisplayName: "Description", Type: FieldTypeText},
				{Name: "mesures_prises", DisplayName: "Mesures prises", Type: FieldTypeText},
			},
		},
		{
			Name:        "cotisation",
			DisplayName: "Cotisation",
			Fields: []FieldTemplate{
				{Name: "scout", DisplayName: "Scout", Type: FieldTypeText},
				{Name: "montant", DisplayName: "Montant", Type: FieldTypeNumber},
				{Name: "date_paiement", DisplayName: "Date de paiement", Type: FieldTypeDate},
				{Name: "methode_paiement", DisplayName: "Méthode de paiement", Type: FieldTypeDropdown,
					Options: []string{"Espèces", "Chèque", "Virement bancaire", "Autre"}},
			},
		},
		{
			Name:        "activites",
			DisplayName: "Activités",
			Fields: []FieldTemplate{
				{Name: "nom", DisplayName: "Nom", Type: FieldTypeText},
				{Name: "date", DisplayName: "Date", Type: FieldTypeDate},
				{Name: "lieu", DisplayName: "Lieu", Type: FieldTypeText},
				{Name: "type", DisplayName: "Type", Type: FieldTypeDropdown,
					Options: []string{"Réunion", "Sortie", "Camp", "Formation", "Autre"}},
				{Name: "nombre_participants", DisplayName: "Nombre de participants", Type: FieldTypeNumber},
			},
		},
	}
}

// Build materializes the template as a table and its ordered fields.
func (t TableTemplate) Build() (Table, []Field, error) {
	table, err := NewTableBuilder().
		WithName(t.Name).
		WithDisplayName(t.DisplayName).
		Build()
	if err != nil {
		return Table{}, nil, err
	}

	fields := make([]Field, 0, len(t.Fields))
	for i, template := range t.Fields {
		field, err := NewFieldBuilder().
			WithTableID(table.ID).
			WithName(template.Name).
			WithDisplayName(template.DisplayName).
			WithType(template.Type).
			WithRequired(true).
			WithOptions(template.Options).
			WithOrder(i + 1).
			Build()
		if err != nil {
			return Table{}, nil, err
		}
		fields = append(fields, field)
	}

	return table, fields, nil
}
