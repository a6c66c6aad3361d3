package classifier

// Sentinel categories assigned when no keyword rule matches.
const (
	CategoryPayments = "Pagos y Abonos"
	CategoryOther    = "Otros"
)

// Rule maps one category to the keywords that select it.
type Rule struct {
	Category string
	Keywords []string
}

// Rules is the ordered rule list. Evaluation is top-down and the first match
// wins, so order is part of the contract: keyword sets overlap across
// categories ("bp" under Gasolina, "pago" under the payments fallback) and
// generic tokens must stay late. Extend by appending; reorder only to change
// precedence on purpose.
var Rules = []Rule{
	{"Amazon", []string{"amazon"}},
	{"Uber Eats", []string{"uber eats"}},
	{"Suscripciones Stream", []string{"spotify", "netflix", "hbo", "prime video", "mubi", "f1", "youtubepremium"}},
	{"Suscripciones Tools", []string{"chatgpt", "chat-gpt", "tactiq.io", "gmail", "msft subscription", "microsoft", "icloud", "apple.com"}},
	{"Gasolina", []string{"bp orquidea", "pemex", "gasolina", "g500", "shell", "bp", "hidrosina", "oxxo gas", "super serv echecaray"}},
	{"Conveniencia", []string{"oxxo", "7 eleven", "7-eleven"}},
	{"Seguros", []string{"metlife", "seguro"}},
	{"Melate", []string{"melate", "tulotero"}},
	{"Moda", []string{"moda", "sfera satelite"}},
	{"Deuda TDC", []string{"intereses efi *", "efectivo inmediato 36"}},
	{"Restaurantes", []string{"toks", "rest macaroni satelite", "islaa", "maison kayser", "restaurante", "rest", "yoyocafe", "matisse", "launica"}},
	{"Cines", []string{"cinepolis", "cinemex", "dulceria"}},
	{"Supermercado", []string{"wal-mart", "wal mart", "la comer", "soriana", "chedraui", "wm express", "cornershop"}},
	{"Tiendas Departamentales", []string{"liverpool", "sears"}},
	{"News", []string{"wsj", "the new york times"}},
	{"Palacio de Hierro", []string{"barraca", "valenciana", "el palacio hierro sate", "el palacio hierro", "palaciodehierro"}},
	{"Hogar y Ferretería", []string{"home depot", "the home depot", "sodimac"}},
	{"Viajes", []string{"aeromexico", "trip", "vivaaerobus", "volaris", "interjet", "aerolinea", "hotel", "hyatt", "marriott", "airbnb", "expedia", "booking"}},
	{"Libros y Papelería", []string{"gandhi", "porrua", "libreria", "lumen", "office depot", "office max"}},
	{"Farmacias", []string{"farmacia", "farmacias", "f del ahorro", "farm guad", "san pablo", "benavides"}},
	{"Transporte y Peajes", []string{"pase", "capufe", "tag", "aeropuerto", "estacionamiento", "parquimetro", "parco"}},
	{"Gobierno", []string{"c.f.e.", "cfe", "sacmex", "tesoreria", "gdf sria"}},
	{"Servicios", []string{"naturgy", "telmex", "izzi", "totalplay", "at&t", "att", "telcel"}},
}

// paymentWords route otherwise-unmatched payment/refund/transfer text to the
// payments sentinel instead of Otros.
var paymentWords = []string{"pago", "pago recibido", "abono", "deposito", "transferencia", "reembolso", "devolucion"}
