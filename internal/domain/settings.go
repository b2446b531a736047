package domain

// SettingMoneyToPointRate is the settings key for the money units required
// to earn one point.
const SettingMoneyToPointRate = "moneyToPointRate"

// DefaultMoneyToPointRate applies when the setting is missing or not a
// positive integer.
const DefaultMoneyToPointRate int64 = 10000
