package geo

// builtinAliases lists alternate, historical and common misspelt names for
// districts, keyed by canonical name.
var builtinAliases = map[string][]string{
	// Karnataka
	"Bengaluru Urban":  {"Bangalore Urban", "Bangalore", "Bengaluru", "Bangalore City", "Bengaluru City"},
	"Bengaluru Rural":  {"Bangalore Rural"},
	"Mysuru":           {"Mysore"},
	"Dakshina Kannada": {"South Canara", "South Kanara", "Mangalore", "Mangaluru"},
	"Uttara Kannada":   {"North Canara", "North Kanara", "Karwar"},
	"Udupi":            {"Udipi"},
	"Belagavi":         {"Belgaum"},
	"Kalaburagi":       {"Gulbarga"},
	"Ballari":          {"Bellary"},
	"Vijayapura":       {"Bijapur"},
	"Shivamogga":       {"Shimoga"},
	"Tumakuru":         {"Tumkur"},
	"Chikkamagaluru":   {"Chikmagalur", "Chickmagalur"},
	"Dharwad":          {"Dharwar", "Hubli", "Hubballi", "Hubli-Dharwad", "Hubballi-Dharwad"},
	"Chamarajanagar":   {"Chamrajnagar", "Chamarajanagara"},
	"Kodagu":           {"Coorg", "Madikeri", "Mercara"},
	"Ramanagara":       {"Ramanagaram"},
	"Chikkaballapur":   {"Chikballapur", "Chikkaballapura"},
	"Davanagere":       {"Davangere"},
	"Yadgir":           {"Yadagiri"},
	"Bagalkot":         {"Bagalkote"},
	"Kolar":            {"Kolar Gold Fields"},
	"Gadag":            {"Gadag-Betageri"},

	// Maharashtra
	"Mumbai":                    {"Bombay", "Mumbai City", "Bombay City"},
	"Mumbai Suburban":           {"Bombay Suburban"},
	"Pune":                      {"Poona"},
	"Chhatrapati Sambhajinagar": {"Aurangabad", "Sambhajinagar"},
	"Dharashiv":                 {"Osmanabad"},
	"Ahilyanagar":               {"Ahmednagar", "Ahmadnagar"},
	"Thane":                     {"Thana"},
	"Nashik":                    {"Nasik"},
	"Solapur":                   {"Sholapur"},
	"Raigad":                    {"Kolaba"},
	"Amravati":                  {"Amraoti"},

	// Tamil Nadu and Puducherry
	"Chennai":         {"Madras"},
	"Tiruchirappalli": {"Trichy", "Tiruchi", "Trichinopoly"},
	"Thanjavur":       {"Tanjore"},
	"Thoothukudi":     {"Tuticorin"},
	"Kanniyakumari":   {"Kanyakumari", "Cape Comorin"},
	"Tirunelveli":     {"Tinnevelly"},
	"Coimbatore":      {"Kovai"},
	"Nilgiris":        {"The Nilgiris", "Ooty", "Udhagamandalam", "Ootacamund"},
	"Viluppuram":      {"Villupuram"},
	"Kancheepuram":    {"Kanchipuram", "Conjeevaram"},
	"Tiruvallur":      {"Thiruvallur"},
	"Chengalpattu":    {"Chingleput"},
	"Puducherry":      {"Pondicherry", "Pondy"},

	// Kerala
	"Thiruvananthapuram": {"Trivandrum"},
	"Kollam":             {"Quilon"},
	"Alappuzha":          {"Alleppey"},
	"Ernakulam":          {"Kochi", "Cochin"},
	"Thrissur":           {"Trichur"},
	"Palakkad":           {"Palghat"},
	"Kozhikode":          {"Calicut"},
	"Kannur":             {"Cannanore"},
	"Kasaragod":          {"Kasargod", "Kasaragode"},
	"Wayanad":            {"Wynad"},

	// Andhra Pradesh and Telangana
	"Visakhapatnam":               {"Vizag", "Vishakhapatnam", "Waltair"},
	"Sri Potti Sriramulu Nellore": {"Nellore", "SPSR Nellore"},
	"YSR Kadapa":                  {"Kadapa", "Cuddapah", "YSR District"},
	"Ananthapuramu":               {"Anantapur", "Anantapuram"},
	"NTR":                         {"Vijayawada", "Bezawada"},
	"Hyderabad":                   {"Secunderabad"},
	"Hanumakonda":                 {"Hanamkonda"},

	// West Bengal
	"Kolkata":           {"Calcutta"},
	"Howrah":            {"Haora"},
	"Purba Bardhaman":   {"Burdwan", "Bardhaman", "East Burdwan", "Purba Burdwan"},
	"Paschim Bardhaman": {"West Burdwan", "Asansol"},
	"Purba Medinipur":   {"East Midnapore", "East Medinipur", "Purba Midnapore"},
	"Paschim Medinipur": {"West Midnapore", "West Medinipur", "Midnapore"},
	"Darjeeling":        {"Darjiling"},
	"Hooghly":           {"Hugli"},
	"North 24 Parganas": {"North Twenty Four Parganas", "Uttar 24 Parganas"},
	"South 24 Parganas": {"South Twenty Four Parganas", "Dakshin 24 Parganas"},
	"Cooch Behar":       {"Koch Bihar", "Coochbehar"},
	"Maldah":            {"Malda"},

	// Uttar Pradesh
	"Prayagraj":          {"Allahabad"},
	"Ayodhya":            {"Faizabad"},
	"Varanasi":           {"Benares", "Banaras", "Kashi"},
	"Kanpur Nagar":       {"Kanpur", "Cawnpore"},
	"Gautam Buddh Nagar": {"Noida", "Greater Noida", "Gautam Buddha Nagar"},
	"Amroha":             {"Jyotiba Phule Nagar"},
	"Kasganj":            {"Kanshi Ram Nagar"},
	"Hathras":            {"Mahamaya Nagar"},
	"Bhadohi":            {"Sant Ravidas Nagar"},
	"Shamli":             {"Prabuddh Nagar"},
	"Bareilly":           {"Bareli"},

	// North and west
	"Gurugram":                   {"Gurgaon"},
	"Nuh":                        {"Mewat"},
	"Sahibzada Ajit Singh Nagar": {"Mohali", "SAS Nagar"},
	"Shaheed Bhagat Singh Nagar": {"Nawanshahr", "SBS Nagar"},
	"Sri Muktsar Sahib":          {"Muktsar"},
	"Rupnagar":                   {"Ropar"},
	"Vadodara":                   {"Baroda"},
	"Ahmedabad":                  {"Amdavad", "Ahmadabad"},
	"Bharuch":                    {"Broach"},
	"Kachchh":                    {"Kutch", "Cutch"},
	"Panchmahal":                 {"Panch Mahals", "Panchmahals"},
	"Narmadapuram":               {"Hoshangabad"},
	"Jabalpur":                   {"Jubbulpore"},
	"Khandwa":                    {"East Nimar"},
	"Khargone":                   {"West Nimar"},
	"Sri Ganganagar":             {"Ganganagar"},
	"Dehradun":                   {"Dehra Dun"},
	"Haridwar":                   {"Hardwar"},
	"Shimla":                     {"Simla"},
	"Kangra":                     {"Dharamshala", "Dharamsala"},
	"Baramulla":                  {"Baramula"},
	"North Goa":                  {"Panaji", "Panjim"},
	"South Goa":                  {"Margao", "Madgaon"},

	// East and north-east
	"Khordha":             {"Khurda", "Bhubaneswar"},
	"Baleshwar":           {"Balasore"},
	"Kendrapara":          {"Kendrapada"},
	"Subarnapur":          {"Sonepur"},
	"Patna":               {"Pataliputra"},
	"Purnia":              {"Purnea"},
	"Munger":              {"Monghyr"},
	"Purbi Singhbhum":     {"East Singhbhum", "Jamshedpur"},
	"Pashchimi Singhbhum": {"West Singhbhum", "Chaibasa"},
	"Saraikela Kharsawan": {"Seraikela Kharsawan", "Seraikela"},
	"Kamrup Metropolitan": {"Guwahati", "Gauhati", "Kamrup Metro"},
	"Sivasagar":           {"Sibsagar"},
	"Kabirdham":           {"Kawardha"},
	"Janjgir-Champa":      {"Janjgir Champa"},

	// Neighbouring countries
	"Kathmandu":  {"Kantipur"},
	"Dhaka":      {"Dacca"},
	"Chattogram": {"Chittagong"},
	"Barishal":   {"Barisal"},
	"Cumilla":    {"Comilla"},
	"Jashore":    {"Jessore"},
	"Bogura":     {"Bogra"},
	"Jaffna":     {"Yalpanam"},
	"Faisalabad": {"Lyallpur"},
	"Sahiwal":    {"Montgomery"},
	"Yangon":     {"Rangoon"},
}
