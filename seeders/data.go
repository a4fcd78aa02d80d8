package seeders

type demoEquipment struct {
	TypeCode    string
	Sequence    int
	Name        string
	Serial      string
	DateAdded   string
	ServiceDate string
}

type demoInspection struct {
	EquipmentID    string
	InspectionDate string
	Result         string
	InspectorName  string
	Notes          string
}

var demoEquipmentData = []demoEquipment{
	{TypeCode: "D", Sequence: 1, Name: "Petzl ID S", Serial: "PID-2201", DateAdded: "2024-03-01", ServiceDate: "2024-03-10"},
	{TypeCode: "D", Sequence: 2, Name: "Petzl ID S", Serial: "PID-2202", DateAdded: "2024-03-01", ServiceDate: "2024-03-10"},
	{TypeCode: "R", Sequence: 1, Name: "Static 11mm 60m", Serial: "RS-0317", DateAdded: "2023-06-15", ServiceDate: "2023-07-01"},
	{TypeCode: "R", Sequence: 2, Name: "Static 11mm 60m", Serial: "RS-0318", DateAdded: "2023-06-15", ServiceDate: "2023-07-01"},
	{TypeCode: "H", Sequence: 1, Name: "Avao Bod Fast", Serial: "HAB-114", DateAdded: "2022-11-20", ServiceDate: "2022-12-01"},
	{TypeCode: "H", Sequence: 2, Name: "Avao Bod Fast", Serial: "HAB-115", DateAdded: "2022-11-20", ServiceDate: "2022-12-01"},
	{TypeCode: "B", Sequence: 1, Name: "ASAP Lock", Serial: "BAL-501", DateAdded: "2024-01-05", ServiceDate: ""},
}

var demoInspectionData = []demoInspection{
	{EquipmentID: "D/001", InspectionDate: "2025-02-14", Result: "PASS", InspectorName: "M. Halimov", Notes: "Cam and handle within wear limits."},
	{EquipmentID: "R/001", InspectionDate: "2025-03-02", Result: "PASS", InspectorName: "M. Halimov", Notes: ""},
	{EquipmentID: "H/001", InspectionDate: "2025-01-20", Result: "FAIL", InspectorName: "S. Rahimova", Notes: "Abrasion on waist belt webbing beyond tolerance."},
}
