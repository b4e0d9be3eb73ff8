package utils

const ShortDashDateLayout = "2006-01-02"
const MonthLayout = "2006-01"
const YearLayout = "2006"
