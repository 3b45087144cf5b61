package dto

// PayrollRequest alta/edición de nómina. Month llega como "YYYY-MM" y la
// aplicación lo separa en mes y año; netPay se calcula, nunca se recibe.
type PayrollRequest struct {
	DriverID    string   `json:"driverId"`
	Month       string   `json:"month"`
	BasicSalary *float64 `json:"basicSalary"`
	Allowances  *float64 `json:"allowances"`
	Deductions  *float64 `json:"deductions"`
	Status      *string  `json:"status"`
}

// PayrollMonthSummary totales de nómina de un mes.
type PayrollMonthSummary struct {
	Year            int     `json:"year"`
	Month           int     `json:"month"`
	Entries         int     `json:"entries"`
	TotalAmount     float64 `json:"totalAmount"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNetPay     float64 `json:"totalNetPay"`
}

// PayrollDriverOption opción del selector de conductores del formulario de nómina.
type PayrollDriverOption struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	EmployeeID string `json:"employeeId"`
}
