package usecase

var (
	FillTemplate = fillTemplate
	ParseDecimal = parseDecimal
	ParseInteger = parseInteger
)
