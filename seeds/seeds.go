// Package seeds embeds the initial data documents served to collections
// that find no persisted snapshot.
package seeds

import _ "embed"

//go:embed data/products.json
var Products []byte

//go:embed data/customers.json
var Customers []byte

//go:embed data/orders.json
var Orders []byte

//go:embed data/users.json
var Users []byte
