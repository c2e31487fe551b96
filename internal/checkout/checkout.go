package checkout

// Payment methods accepted at checkout. The last three are contact-first
// methods: the customer arranges the transfer out of band before uploading
// proof.
const (
	PayBaridiMob = "BaridiMob"
	PayCCP       = "CCP"
	PayUSDT      = "USDT"
	PayWise      = "Wise"
	PayRevolut   = "Revolut"
)

var paymentMethods = map[string]bool{
	PayBaridiMob: true,
	PayCCP:       true,
	PayUSDT:      true,
	PayWise:      true,
	PayRevolut:   true,
}

func ValidPaymentMethod(m string) bool {
	return paymentMethods[m]
}

// Proof is the user-supplied payment evidence. Data may be raw image bytes
// (from a file upload) or an already-encoded data-URI / base64 string
// carried in DataURI.
type Proof struct {
	Data     []byte
	DataURI  string
	MIMEType string
	FileName string
}

func (p Proof) Empty() bool {
	return len(p.Data) == 0 && p.DataURI == ""
}

// OrderForm is built fresh per checkout attempt and never persisted.
type OrderForm struct {
	CustomerName  string
	Phone         string
	Email         string
	PaymentMethod string
	PromoCode     string
	Proof         Proof
}

// Receipt describes a confirmed order for the success view.
type Receipt struct {
	Reference string `json:"reference"`
	Email     string `json:"email"`
	Total     int    `json:"total"`
}
