package domain

// Update is one draft mutation. Every variant produces a new ReceiptDraft
// value from the previous one; nothing is mutated in place.
type Update interface {
	Apply(ReceiptDraft) ReceiptDraft
}

type TopField string

const (
	FieldReceiptNumber TopField = "receiptNumber"
	FieldReceiptDate   TopField = "receiptDate"
	FieldPlaceOfSupply TopField = "placeOfSupply"
	FieldNotes         TopField = "notes"
	FieldTerms         TopField = "terms"
)

type Party string

const (
	PartySeller Party = "seller"
	PartyBuyer  Party = "buyer"
)

type AddressField string

const (
	AddressCompanyName   AddressField = "companyName"
	AddressContactPerson AddressField = "contactPerson"
	AddressStreet        AddressField = "address"
	AddressCity          AddressField = "city"
	AddressState         AddressField = "state"
	AddressCountry       AddressField = "country"
	AddressGSTIN         AddressField = "gstin"
)

type ItemTextField string

const (
	ItemDescription ItemTextField = "description"
	ItemHSNSAC      ItemTextField = "hsnSac"
)

type ItemNumberField string

const (
	ItemQuantity    ItemNumberField = "quantity"
	ItemRate        ItemNumberField = "rate"
	ItemIGSTPercent ItemNumberField = "igstPercent"
	ItemCess        ItemNumberField = "cess"
)

// SetField replaces one top-level string field.
type SetField struct {
	Field TopField
	Value string
}

func (u SetField) Apply(d ReceiptDraft) ReceiptDraft {
	switch u.Field {
	case FieldReceiptNumber:
		d.ReceiptNumber = u.Value
	case FieldReceiptDate:
		d.ReceiptDate = u.Value
	case FieldPlaceOfSupply:
		d.PlaceOfSupply = u.Value
	case FieldNotes:
		d.Notes = u.Value
	case FieldTerms:
		d.Terms = u.Value
	}
	return d
}

// SetAddressField replaces one field of the seller or buyer address.
type SetAddressField struct {
	Party Party
	Field AddressField
	Value string
}

func (u SetAddressField) Apply(d ReceiptDraft) ReceiptDraft {
	addr := d.Seller
	if u.Party == PartyBuyer {
		addr = d.Buyer
	}
	switch u.Field {
	case AddressCompanyName:
		addr.CompanyName = u.Value
	case AddressContactPerson:
		addr.ContactPerson = u.Value
	case AddressStreet:
		addr.Address = u.Value
	case AddressCity:
		addr.City = u.Value
	case AddressState:
		addr.State = u.Value
	case AddressCountry:
		addr.Country = u.Value
	case AddressGSTIN:
		addr.GSTIN = u.Value
	}
	if u.Party == PartyBuyer {
		d.Buyer = addr
	} else {
		d.Seller = addr
	}
	return d
}

// SetItemText replaces one free-text field of the item with the given ID.
// Unknown IDs leave the draft unchanged.
type SetItemText struct {
	ID    string
	Field ItemTextField
	Value string
}

func (u SetItemText) Apply(d ReceiptDraft) ReceiptDraft {
	d.Items = mapItem(d.Items, u.ID, func(item LineItem) LineItem {
		switch u.Field {
		case ItemDescription:
			item.Description = u.Value
		case ItemHSNSAC:
			item.HSNSAC = u.Value
		}
		return item
	})
	return d
}

// SetItemNumber replaces one numeric field of the item with the given ID.
// Values are clamped to the field's invariant: non-negative, and 0-100 for
// the tax percentage.
type SetItemNumber struct {
	ID    string
	Field ItemNumberField
	Value float64
}

func (u SetItemNumber) Apply(d ReceiptDraft) ReceiptDraft {
	value := u.Value
	if value < 0 {
		value = 0
	}
	if u.Field == ItemIGSTPercent && value > 100 {
		value = 100
	}
	d.Items = mapItem(d.Items, u.ID, func(item LineItem) LineItem {
		switch u.Field {
		case ItemQuantity:
			item.Quantity = value
		case ItemRate:
			item.Rate = value
		case ItemIGSTPercent:
			item.IGSTPercent = value
		case ItemCess:
			item.Cess = value
		}
		return item
	})
	return d
}

// AddItem appends a line item to the end of the list.
type AddItem struct {
	Item LineItem
}

func (u AddItem) Apply(d ReceiptDraft) ReceiptDraft {
	items := make([]LineItem, 0, len(d.Items)+1)
	items = append(items, d.Items...)
	d.Items = append(items, u.Item)
	return d
}

// RemoveItem removes the item with the given ID. Removing the last remaining
// item is a no-op: the list never drops below one entry.
type RemoveItem struct {
	ID string
}

func (u RemoveItem) Apply(d ReceiptDraft) ReceiptDraft {
	if len(d.Items) <= 1 {
		return d
	}
	items := make([]LineItem, 0, len(d.Items))
	for _, item := range d.Items {
		if item.ID == u.ID {
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return d
	}
	d.Items = items
	return d
}

func mapItem(items []LineItem, id string, fn func(LineItem) LineItem) []LineItem {
	out := make([]LineItem, len(items))
	for i, item := range items {
		if item.ID == id {
			item = fn(item)
		}
		out[i] = item
	}
	return out
}
