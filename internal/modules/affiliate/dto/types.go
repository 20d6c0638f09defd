package dto

type ClickInput struct {
	ProductID string
	Category  string
	Price     float64
	Currency  string
	URL       string
	Source    string
}

type ClickOutput struct {
	URL      string
	Tracked  bool
	Provider string
}

type ProviderOutput struct {
	Name    string
	Version string
	Binary  string
	Enabled bool
	Builtin bool
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}
