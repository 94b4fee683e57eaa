package models

// Category groups the labour subcategories a technician can register under.
type Category struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// Categories is the fixed catalogue served to clients for signup and job
// posting forms.
var Categories = []Category{
	{
		ID:   "construction",
		Name: "Construction & Civil Work",
		Subcategories: []string{
			"Mason (Rajmistri)", "Carpenter", "Electrician", "Plumber", "Welder / Fabricator",
			"Tile / Marble Worker", "Painter / POP Technician", "Bar Bender / Steel Fixer",
			"Scaffolder", "Heavy machinery operators (JCB, crane, loader, excavator)", "Surveyor helper",
			"Helper / Construction helper", "Site cleaner", "Material handler", "Demolition labour",
			"Concrete mixer helper", "Road construction labour", "Paver block worker",
		},
	},
	{
		ID:   "industrial",
		Name: "Industrial & Factory Labour",
		Subcategories: []string{
			"Machine operator", "Packaging worker", "Loading/unloading labour", "Quality check helper",
			"Production line worker", "Warehouse picker/packer", "Forklift operator", "Godown labour",
			"Assembly worker",
		},
	},
	{
		ID:   "agricultural",
		Name: "Agricultural Labour",
		Subcategories: []string{
			"Sowing labour", "Harvesting labour", "Irrigation worker", "Fertilizer & pesticide sprayer",
			"Crop-cutting labour", "Plantation workers (tea, coffee, rubber, sugarcane, etc.)",
			"Tractor driver", "Dairy farm helper", "Poultry farm labour",
		},
	},
	{
		ID:   "household",
		Name: "Household & Domestic Work",
		Subcategories: []string{
			"Housemaid", "Cook", "Babysitter", "Elderly caretaker", "House cleaning worker",
			"Driver", "Gardener / Mali", "Watchman / Security guard",
		},
	},
	{
		ID:   "transportation",
		Name: "Transportation & Loading Work",
		Subcategories: []string{
			"Loaders / unloaders", "Tempo/Truck helpers", "Parcel handling labour (courier/logistics)",
			"Porter / coolie", "Delivery helpers",
		},
	},
	{
		ID:   "event",
		Name: "Event & Hospitality Labour",
		Subcategories: []string{
			"Event setup labour (stage/tent/pandal)", "Catering workers", "Waiters / serving staff",
			"Cleaning staff", "Sound & lighting setup labour", "Decoration workers", "Bouncers",
		},
	},
	{
		ID:   "retail",
		Name: "Retail & Commercial Labour",
		Subcategories: []string{
			"Store helpers", "Merchandising helpers", "Billing assistants", "Promoters / samplers",
			"Flyer distributors", "Stock fillers",
		},
	},
	{
		ID:   "municipal",
		Name: "Municipal & Public Utility Labour",
		Subcategories: []string{
			"Garbage collection workers", "Sweepers", "Drainage workers", "Water pipeline labour",
			"Road maintenance labour",
		},
	},
	{
		ID:   "specialized",
		Name: "Specialized Technical Labour (Contract-based)",
		Subcategories: []string{
			"AC technician", "CCTV technician", "RO technician", "Elevator maintenance",
			"Solar panel installation", "Computer/network technician",
		},
	},
	{
		ID:   "maintenance",
		Name: "Maintenance & Repair Labour",
		Subcategories: []string{
			"House repair workers", "Plastering labour", "Waterproofing workers", "Wood polishers",
			"Pest control workers",
		},
	},
	{
		ID:   "other",
		Name: "Other Services",
		Subcategories: []string{
			"General labour", "Casual worker", "Day labour", "Contract worker",
		},
	},
}
