// README: Built-in airport network used by routebench and as a DB-less fallback.
package airport

import "skyfare/internal/geo"

// SeedAirports returns the built-in demo network nodes.
func SeedAirports() []Airport {
	return []Airport{
		{Code: "DEL", Name: "Indira Gandhi International", City: "New Delhi", Country: "India", Lat: 28.556, Lng: 77.100},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", City: "Mumbai", Country: "India", Lat: 19.089, Lng: 72.865},
		{Code: "BLR", Name: "Kempegowda International", City: "Bengaluru", Country: "India", Lat: 13.199, Lng: 77.706},
		{Code: "MAA", Name: "Chennai International", City: "Chennai", Country: "India", Lat: 12.990, Lng: 80.169},
		{Code: "CCU", Name: "Netaji Subhas Chandra Bose International", City: "Kolkata", Country: "India", Lat: 22.655, Lng: 88.447},
		{Code: "HYD", Name: "Rajiv Gandhi International", City: "Hyderabad", Country: "India", Lat: 17.240, Lng: 78.429},
		{Code: "GOI", Name: "Goa International", City: "Goa", Country: "India", Lat: 15.381, Lng: 73.831},
		{Code: "JAI", Name: "Jaipur International", City: "Jaipur", Country: "India", Lat: 26.824, Lng: 75.812},
	}
}

// SeedConnections returns the built-in demo links. Distances are derived
// from the great-circle distance between the endpoint airports so the seed
// stays consistent with the coordinates above.
func SeedConnections() []Connection {
	airports := SeedAirports()
	byCode := make(map[string]Airport, len(airports))
	for _, a := range airports {
		byCode[a.Code] = a
	}

	pairs := []struct {
		from, to string
		active   bool
	}{
		{"DEL", "BOM", true},
		{"DEL", "JAI", true},
		{"DEL", "CCU", true},
		{"DEL", "HYD", true},
		{"BOM", "GOI", true},
		{"BOM", "BLR", true},
		{"BOM", "HYD", true},
		{"BLR", "MAA", true},
		{"BLR", "HYD", true},
		{"MAA", "CCU", true},
		{"HYD", "CCU", true},
		{"JAI", "BOM", true},
		// Kept in the catalogue but switched off; must never appear in routes.
		{"GOI", "MAA", false},
	}

	conns := make([]Connection, 0, len(pairs))
	for _, p := range pairs {
		a, b := byCode[p.from], byCode[p.to]
		conns = append(conns, Connection{
			From:       p.from,
			To:         p.to,
			DistanceKm: geo.HaversineKm(a.Lat, a.Lng, b.Lat, b.Lng),
			Active:     p.active,
		})
	}
	return conns
}
