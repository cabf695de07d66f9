package unsupported

//bingen:record
type Measure struct {
	Name  string
	Ratio float64
}
