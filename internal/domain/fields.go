package domain

import "horsemanager/internal/fields"

// Columns are padded for the widest generated value: a 36-character UUID and
// a two-word name of up to 23 characters.

// Fields is the display metadata for every entity type, built once at
// package initialisation.
var Fields = fields.NewRegistry(
	fields.Type(HorseType,
		fields.Field("ID", fields.Padding(38)),
		fields.Field("Name", fields.Padding(25)),
		fields.Field("Rarity", fields.Padding(10), fields.Format(fields.RarityColored)),
		fields.Field("Energy", fields.Padding(10), fields.Format(fields.EnergyColored|fields.Percentage)),
		fields.Field("Resistance", fields.Padding(14), fields.Static(fields.ColorDarkGray)),
		fields.Field("Speed", fields.Padding(9), fields.Static(fields.ColorDarkGray)),
		fields.Field("Age", fields.Padding(7)),
		fields.Field("Price", fields.Padding(14), fields.Format(fields.Currency)),
	),
	fields.Type(JockeyType,
		fields.Field("ID", fields.Padding(38)),
		fields.Field("Name", fields.Padding(25)),
		fields.Field("Rarity", fields.Padding(10), fields.Format(fields.RarityColored)),
		fields.Field("Skill", fields.Padding(9), fields.Format(fields.Percentage)),
		fields.Field("Age", fields.Padding(7)),
		fields.Field("Price", fields.Padding(14), fields.Format(fields.Currency)),
	),
	fields.Type(TradeType,
		fields.Field("Day", fields.Padding(12)),
		fields.Field("Direction", fields.Label("Side"), fields.Padding(6)),
		fields.Field("Item", fields.Padding(25)),
		fields.Field("Type", fields.Padding(8)),
		fields.Field("Price", fields.Padding(14), fields.Format(fields.Currency)),
		fields.Field("Event", fields.Padding(9)),
		fields.Field("Balance", fields.Padding(14), fields.Format(fields.Currency)),
	),
)
