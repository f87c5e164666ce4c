package payroll

// ComputeTotals derives gross and net pay from the compensation components:
// gross = basic + overtime + bonuses, net = gross - deductions.
func ComputeTotals(basicSalary, overtime, bonuses, deductions float64) (gross, net float64) {
	gross = basicSalary + overtime + bonuses
	net = gross - deductions
	return gross, net
}
