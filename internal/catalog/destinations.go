package catalog

// destinations is the full catalog, in display order. Recommended() and the
// random preview iterate this slice directly.
var destinations = []Destination{
	{
		ID:             "istanbul",
		Name:           "Istanbul",
		Country:        "Turkey",
		Description:    "A transcontinental city straddling Europe and Asia, Istanbul offers a blend of historical sites, vibrant culture, and delicious cuisine. With your Bahraini passport, you can enjoy visa-free entry for up to 90 days.",
		ImageURL:       "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=800&h=600",
		Rating:         4.8,
		ReviewCount:    2345,
		FlightTime:     "~3.5 hours",
		BestSeason:     "Apr-Jun, Sep-Nov",
		Languages:      []string{"Turkish", "English"},
		Currency:       "Turkish Lira",
		CurrencyCode:   "TRY",
		ExchangeRate:   93.45, // BHD to TRY
		TimeDifference: "+0 hours from Bahrain",
		VisaStatus:     "Visa-free for Bahrainis",
		VisaInfo:       "No visa required for stays up to 90 days within a 180-day period",
		MuslimFriendly: Facilities{Prayer: true, Halal: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 10, Max: 20},
			Transport:  Range{Min: 0.5, Max: 1},
			Hotel:      Range{Min: 30, Max: 60},
			Attraction: Range{Min: 2, Max: 5},
		},
		Embassy: &Embassy{
			Address:   "Maçka Cad. Narcis Apt. No: 35/5, Teşvikiye, Şişli, Istanbul",
			Phone:     "+90 212 259 81 41",
			Emergency: "+90 532 546 7235",
		},
		Documents: []Document{
			{Name: "Passport", Status: DocRequired, Description: "Must be valid for at least 6 months beyond your stay"},
			{Name: "Visa", Status: DocRequired, Description: "No visa required for stays up to 90 days within a 180-day period"},
			{Name: "Return Ticket", Status: DocRecommended, Description: "Proof of return or onward travel may be requested"},
			{Name: "Travel Insurance", Status: DocRecommended, Description: "Not mandatory but highly recommended"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
	{
		ID:             "dubai",
		Name:           "Dubai",
		Country:        "United Arab Emirates",
		Description:    "A city of superlatives, Dubai offers luxury shopping, ultramodern architecture, and a vibrant nightlife. For Bahraini citizens, travel is easy with just your ID card or GCC passport.",
		ImageURL:       "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=400",
		Rating:         4.9,
		ReviewCount:    3456,
		FlightTime:     "~1 hour",
		BestSeason:     "Nov-Apr",
		Languages:      []string{"Arabic", "English"},
		Currency:       "UAE Dirham",
		CurrencyCode:   "AED",
		ExchangeRate:   9.72, // BHD to AED
		TimeDifference: "+0 hours from Bahrain",
		VisaStatus:     "Visa on arrival",
		VisaInfo:       "Bahraini citizens can enter with ID card or GCC passport",
		MuslimFriendly: Facilities{Prayer: true, Halal: true, Privacy: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 15, Max: 35},
			Transport:  Range{Min: 1, Max: 3},
			Hotel:      Range{Min: 50, Max: 150},
			Attraction: Range{Min: 5, Max: 25},
		},
		Embassy: &Embassy{
			Address:   "Bahrain Embassy is in Abu Dhabi, not Dubai",
			Phone:     "+971 2 665 7500",
			Emergency: "+971 50 600 0404",
		},
		Documents: []Document{
			{Name: "Passport/ID", Status: DocRequired, Description: "GCC National ID or valid passport"},
			{Name: "Visa", Status: DocInfo, Description: "Not required for Bahraini citizens"},
			{Name: "Return Ticket", Status: DocInfo, Description: "Not typically required for GCC citizens"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
	{
		ID:             "kuala-lumpur",
		Name:           "Kuala Lumpur",
		Country:        "Malaysia",
		Description:    "Malaysia's capital is a melting pot of cultures offering incredible cuisine, shopping and Muslim-friendly facilities. Bahraini travelers can enjoy visa-free entry for up to 90 days.",
		ImageURL:       "https://images.unsplash.com/photo-1596422846543-75c6fc197f07?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=400",
		Rating:         4.7,
		ReviewCount:    1890,
		FlightTime:     "~7 hours",
		BestSeason:     "Mar-Sep",
		Languages:      []string{"Malay", "English", "Chinese", "Tamil"},
		Currency:       "Malaysian Ringgit",
		CurrencyCode:   "MYR",
		ExchangeRate:   10.89, // BHD to MYR
		TimeDifference: "+5 hours from Bahrain",
		VisaStatus:     "Visa-free for Bahrainis",
		VisaInfo:       "No visa required for stays up to 90 days",
		MuslimFriendly: Facilities{Prayer: true, Halal: true, Privacy: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 3, Max: 10},
			Transport:  Range{Min: 0.3, Max: 1},
			Hotel:      Range{Min: 20, Max: 60},
			Attraction: Range{Min: 1, Max: 5},
		},
		Embassy: &Embassy{
			Address:   "No. 5, Lorong U-Thant, Off Jalan U-Thant, 55000 Kuala Lumpur",
			Phone:     "+60 3 2148 7373",
			Emergency: "+60 12 626 7090",
		},
		Documents: []Document{
			{Name: "Passport", Status: DocRequired, Description: "Must be valid for at least 6 months beyond your stay"},
			{Name: "Visa", Status: DocInfo, Description: "No visa required for stays up to 90 days"},
			{Name: "Return Ticket", Status: DocRequired, Description: "Proof of return travel is required"},
			{Name: "Travel Insurance", Status: DocRecommended, Description: "Highly recommended for international travel"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
	{
		ID:             "maldives",
		Name:           "Maldives",
		Country:        "Maldives",
		Description:    "Paradise on Earth, the Maldives offers pristine beaches, crystal clear waters, and luxury accommodations. Bahraini citizens enjoy visa on arrival for tourist stays.",
		ImageURL:       "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=400",
		Rating:         4.9,
		ReviewCount:    2100,
		FlightTime:     "~5 hours",
		BestSeason:     "Nov-Apr",
		Languages:      []string{"Dhivehi", "English"},
		Currency:       "Maldivian Rufiyaa",
		CurrencyCode:   "MVR",
		ExchangeRate:   40.92, // BHD to MVR
		TimeDifference: "+3 hours from Bahrain",
		VisaStatus:     "Visa on arrival",
		VisaInfo:       "Free visa on arrival for 30 days for Bahraini citizens",
		MuslimFriendly: Facilities{Prayer: true, Halal: true, Privacy: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 15, Max: 40},
			Transport:  Range{Min: 5, Max: 20},
			Hotel:      Range{Min: 100, Max: 500},
			Attraction: Range{Min: 10, Max: 50},
		},
		Documents: []Document{
			{Name: "Passport", Status: DocRequired, Description: "Must be valid for at least 6 months beyond your stay"},
			{Name: "Visa", Status: DocInfo, Description: "Free visa on arrival for 30 days"},
			{Name: "Return Ticket", Status: DocRequired, Description: "Proof of return travel is required"},
			{Name: "Hotel Reservation", Status: DocRequired, Description: "Confirmed reservation for your entire stay"},
			{Name: "Travel Insurance", Status: DocRecommended, Description: "Highly recommended for international travel"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
	{
		ID:             "cairo",
		Name:           "Cairo",
		Country:        "Egypt",
		Description:    "The capital of Egypt offers ancient wonders, rich history, and cultural experiences. Bahraini travelers can obtain a visa on arrival for tourism purposes.",
		ImageURL:       "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=400",
		Rating:         4.5,
		ReviewCount:    1785,
		FlightTime:     "~2.5 hours",
		BestSeason:     "Oct-Apr",
		Languages:      []string{"Arabic", "English"},
		Currency:       "Egyptian Pound",
		CurrencyCode:   "EGP",
		ExchangeRate:   82.12, // BHD to EGP
		TimeDifference: "+1 hour from Bahrain",
		VisaStatus:     "Visa on arrival",
		VisaInfo:       "Visa on arrival available for Bahraini citizens for stays up to 30 days",
		MuslimFriendly: Facilities{Prayer: true, Halal: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 2, Max: 10},
			Transport:  Range{Min: 0.2, Max: 1},
			Hotel:      Range{Min: 15, Max: 50},
			Attraction: Range{Min: 1, Max: 5},
		},
		Embassy: &Embassy{
			Address:   "10 Ahmed Nessim St., Giza, Cairo",
			Phone:     "+20 2 3748 6144",
			Emergency: "+20 100 600 0404",
		},
		Documents: []Document{
			{Name: "Passport", Status: DocRequired, Description: "Must be valid for at least 6 months beyond your stay"},
			{Name: "Visa", Status: DocRequired, Description: "Visa on arrival available for 30 days, fee approximately $25"},
			{Name: "Return Ticket", Status: DocRecommended, Description: "Proof of return travel may be requested"},
			{Name: "Hotel Reservation", Status: DocRecommended, Description: "Proof of accommodation may be requested"},
			{Name: "Travel Insurance", Status: DocRecommended, Description: "Highly recommended for international travel"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
	{
		ID:             "marrakech",
		Name:           "Marrakech",
		Country:        "Morocco",
		Description:    "This vibrant city offers colorful markets, beautiful architecture and rich cultural experiences. Bahraini citizens can stay up to 90 days without a visa.",
		ImageURL:       "https://images.unsplash.com/photo-1597212720128-3332d0e3a837?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=600&h=400",
		Rating:         4.6,
		ReviewCount:    1560,
		FlightTime:     "~6 hours",
		BestSeason:     "Mar-May, Sep-Nov",
		Languages:      []string{"Arabic", "French", "Berber"},
		Currency:       "Moroccan Dirham",
		CurrencyCode:   "MAD",
		ExchangeRate:   25.86, // BHD to MAD
		TimeDifference: "-3 hours from Bahrain",
		VisaStatus:     "Visa-free for Bahrainis",
		VisaInfo:       "No visa required for stays up to 90 days",
		MuslimFriendly: Facilities{Prayer: true, Halal: true},
		Costs: CostIndicators{
			Meal:       Range{Min: 3, Max: 15},
			Transport:  Range{Min: 0.3, Max: 1.5},
			Hotel:      Range{Min: 20, Max: 70},
			Attraction: Range{Min: 2, Max: 8},
		},
		Embassy: &Embassy{
			Address:   "10, Rue Tiddas, Hassan, Rabat",
			Phone:     "+212 537 767 051",
			Emergency: "+212 661 205 222",
		},
		Documents: []Document{
			{Name: "Passport", Status: DocRequired, Description: "Must be valid for at least 6 months beyond your stay"},
			{Name: "Visa", Status: DocInfo, Description: "No visa required for stays up to 90 days"},
			{Name: "Return Ticket", Status: DocRecommended, Description: "Proof of return travel may be requested"},
			{Name: "Hotel Reservation", Status: DocRecommended, Description: "Proof of accommodation may be requested"},
			{Name: "Travel Insurance", Status: DocRecommended, Description: "Highly recommended for international travel"},
			{Name: "COVID-19 Requirements", Status: DocInfo, Description: "No current restrictions for Bahraini travelers"},
		},
	},
}

// profiles is the matching-profile table. Order matters: it is the scoring
// tie-break. Companion lists are preference-ranked, best fit first.
var profiles = []Profile{
	{
		DestinationID: "istanbul",
		Budget:        Range{Min: 400, Max: 1200},
		Interests:     []string{"cultural", "historical", "food", "shopping"},
		Requirements:  []string{"prayer", "halal", "alcohol"},
		Season:        SeasonScores{Winter: 2, Spring: 8, Summer: 9, Fall: 8},
		Companions:    []string{"solo", "couple", "family", "friends"},
		FlightHours:   3.5,
	},
	{
		DestinationID: "kuala-lumpur",
		Budget:        Range{Min: 600, Max: 1600},
		Interests:     []string{"food", "shopping", "nature", "cultural"},
		Requirements:  []string{"prayer", "halal", "privacy", "alcohol"},
		Season:        SeasonScores{Winter: 7, Spring: 6, Summer: 7, Fall: 7},
		Companions:    []string{"family", "couple", "friends", "solo"},
		FlightHours:   7,
	},
	{
		DestinationID: "dubai",
		Budget:        Range{Min: 800, Max: 2500},
		Interests:     []string{"shopping", "relaxation", "cultural"},
		Requirements:  []string{"prayer", "halal", "alcohol"},
		Season:        SeasonScores{Winter: 9, Spring: 7, Summer: 4, Fall: 7},
		Companions:    []string{"family", "couple", "friends"},
		FlightHours:   1,
	},
	{
		DestinationID: "cairo",
		Budget:        Range{Min: 300, Max: 1000},
		Interests:     []string{"historical", "cultural", "food"},
		Requirements:  []string{"prayer", "halal"},
		Season:        SeasonScores{Winter: 8, Spring: 7, Summer: 5, Fall: 7},
		Companions:    []string{"solo", "friends", "couple"},
		FlightHours:   2.5,
	},
	{
		DestinationID: "marrakech",
		Budget:        Range{Min: 500, Max: 1400},
		Interests:     []string{"cultural", "historical", "shopping", "food"},
		Requirements:  []string{"prayer", "halal"},
		Season:        SeasonScores{Winter: 6, Spring: 9, Summer: 7, Fall: 8},
		Companions:    []string{"couple", "friends", "solo"},
		FlightHours:   6,
	},
	{
		DestinationID: "maldives",
		Budget:        Range{Min: 1000, Max: 3000},
		Interests:     []string{"relaxation", "nature"},
		Requirements:  []string{"prayer", "halal", "privacy"},
		Season:        SeasonScores{Winter: 10, Spring: 8, Summer: 7, Fall: 9},
		Companions:    []string{"couple", "family"},
		FlightHours:   5,
	},
}
