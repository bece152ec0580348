package specifier

// defaultEntries are the document codes of the unified design documentation
// system used by the archive.
var defaultEntries = []Entry{
	{Abbreviation: "СП", Directory: "SP", Description: "Specification"},
	{Abbreviation: "КД", Directory: "KD", Description: "Detail design"},
	{Abbreviation: "ЧД", Directory: "KD", Description: "Detail drawing"},
	{Abbreviation: "СБ", Directory: "SB", Description: "Assembly drawing"},
	{Abbreviation: "ВО", Directory: "VO", Description: "General arrangement drawing"},
	{Abbreviation: "ГЧ", Directory: "GCH", Description: "Outline drawing"},
	{Abbreviation: "МЧ", Directory: "MCH", Description: "Installation drawing"},
	{Abbreviation: "МЭ", Directory: "ME", Description: "Electrical installation drawing"},
	{Abbreviation: "УЧ", Directory: "UCH", Description: "Packaging drawing"},
	{Abbreviation: "Э1", Directory: "E1", Description: "Electrical block diagram"},
	{Abbreviation: "Э2", Directory: "E2", Description: "Electrical functional diagram"},
	{Abbreviation: "Э3", Directory: "E3", Description: "Electrical schematic diagram"},
	{Abbreviation: "Э4", Directory: "E4", Description: "Electrical connection diagram"},
	{Abbreviation: "Э5", Directory: "E5", Description: "Electrical wiring diagram"},
	{Abbreviation: "Э6", Directory: "E6", Description: "Electrical general diagram"},
	{Abbreviation: "ПЭ3", Directory: "PE3", Description: "Parts list"},
	{Abbreviation: "ВП", Directory: "VP", Description: "Purchased items list"},
	{Abbreviation: "ВС", Directory: "VS", Description: "Specifications list"},
	{Abbreviation: "ВД", Directory: "VD", Description: "Reference documents list"},
	{Abbreviation: "ТУ", Directory: "TU", Description: "Technical conditions"},
	{Abbreviation: "ПМ", Directory: "PM", Description: "Test program and methods"},
	{Abbreviation: "ТБ", Directory: "TB", Description: "Tables"},
	{Abbreviation: "РР", Directory: "RR", Description: "Calculations"},
	{Abbreviation: "ПЗ", Directory: "PZ", Description: "Explanatory note"},
	{Abbreviation: "РЭ", Directory: "RE", Description: "Operation manual"},
	{Abbreviation: "ПС", Directory: "PS", Description: "Passport"},
	{Abbreviation: "ФО", Directory: "FO", Description: "Logbook"},
	{Abbreviation: "ЭТ", Directory: "ET", Description: "Label"},
	{Abbreviation: "ЗИ", Directory: "ZI", Description: "Spare parts list"},
	{Abbreviation: "Д", Directory: "D", Description: "Other documents"},
	{Abbreviation: "Д1", Directory: "D", Description: "Other documents"},
	{Abbreviation: "Д2", Directory: "D", Description: "Other documents"},
}

// Default returns the built-in specifier table.
func Default() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic("invalid built-in specifier table: " + err.Error())
	}
	return t
}
