package dictionary

// Country codes produced by region and postal code lookups.
const (
	CountryUS = "US"
	CountryCA = "CA"
)

var directionals = New(map[string]string{
	"north": "N", "south": "S", "east": "E", "west": "W",
	"northeast": "NE", "northwest": "NW", "southeast": "SE", "southwest": "SW",
	"north east": "NE", "north west": "NW", "south east": "SE", "south west": "SW",
	"north-east": "NE", "north-west": "NW", "south-east": "SE", "south-west": "SW",
	"n": "N", "s": "S", "e": "E", "w": "W",
	"ne": "NE", "nw": "NW", "se": "SE", "sw": "SW",
	"n.": "N", "s.": "S", "e.": "E", "w.": "W",
	"n.e.": "NE", "n.w.": "NW", "s.e.": "SE", "s.w.": "SW",
	// Canada Post French forms
	"nord": "N", "sud": "S", "est": "E", "ouest": "O",
	"nord-est": "NE", "nord-ouest": "NO", "sud-est": "SE", "sud-ouest": "SO",
})

var streetTypes = New(map[string]string{
	"alley": "aly", "allee": "aly", "ally": "aly", "aly": "aly",
	"annex": "anx", "anex": "anx", "annx": "anx", "anx": "anx",
	"arcade": "arc", "arc": "arc",
	"avenue": "ave", "av": "ave", "aven": "ave", "avenu": "ave", "avn": "ave", "avnue": "ave", "ave": "ave",
	"bayou": "byu", "bayoo": "byu", "byu": "byu",
	"beach": "bch", "bch": "bch",
	"bend": "bnd", "bnd": "bnd",
	"bluff": "blf", "bluf": "blf", "blf": "blf",
	"bottom": "btm", "bot": "btm", "bottm": "btm", "btm": "btm",
	"boulevard": "blvd", "boul": "blvd", "boulv": "blvd", "blvd": "blvd",
	"branch": "br", "brnch": "br", "br": "br",
	"bridge": "brg", "brdge": "brg", "brg": "brg",
	"brook": "brk", "brk": "brk",
	"bypass": "byp", "bypa": "byp", "bypas": "byp", "byps": "byp", "byp": "byp",
	"camp": "cp", "cmp": "cp",
	"canyon": "cyn", "canyn": "cyn", "cnyn": "cyn", "cyn": "cyn",
	"cape": "cpe", "cpe": "cpe",
	"causeway": "cswy", "causwa": "cswy", "cswy": "cswy",
	"center": "ctr", "cent": "ctr", "centr": "ctr", "centre": "ctr", "cnter": "ctr", "cntr": "ctr", "ctr": "ctr",
	"circle": "cir", "circ": "cir", "circl": "cir", "crcl": "cir", "crcle": "cir", "cir": "cir",
	"cliff": "clf", "clf": "clf", "cliffs": "clfs", "clfs": "clfs",
	"club": "clb", "clb": "clb",
	"common": "cmn", "cmn": "cmn",
	"concourse": "conc", "conc": "conc",
	"corner": "cor", "cor": "cor", "corners": "cors", "cors": "cors",
	"course": "crse", "crse": "crse",
	"court": "ct", "crt": "ct", "ct": "ct", "courts": "cts", "cts": "cts",
	"cove": "cv", "cv": "cv",
	"creek": "crk", "crk": "crk",
	"crescent": "cres", "crsent": "cres", "crsnt": "cres", "cres": "cres",
	"crest": "crst", "crst": "crst",
	"crossing": "xing", "crssng": "xing", "xing": "xing",
	"crossroad": "xrd", "xrd": "xrd",
	"curve": "curv", "curv": "curv",
	"dale": "dl", "dl": "dl",
	"dam": "dm", "dm": "dm",
	"divide": "dv", "div": "dv", "dvd": "dv", "dv": "dv",
	"drive": "dr", "driv": "dr", "drv": "dr", "dr": "dr", "drives": "drs", "drs": "drs",
	"estate": "est", "estates": "ests", "ests": "ests",
	"expressway": "expy", "exp": "expy", "expr": "expy", "express": "expy", "expw": "expy", "expy": "expy",
	"extension": "ext", "extn": "ext", "extnsn": "ext", "ext": "ext",
	"falls": "fls", "fls": "fls",
	"ferry": "fry", "frry": "fry", "fry": "fry",
	"field": "fld", "fld": "fld", "fields": "flds", "flds": "flds",
	"flat": "flt", "flt": "flt", "flats": "flts", "flts": "flts",
	"ford": "frd", "frd": "frd",
	"forest": "frst", "forests": "frst", "frst": "frst",
	"forge": "frg", "forg": "frg", "frg": "frg",
	"fork": "frk", "frk": "frk", "forks": "frks", "frks": "frks",
	"fort": "ft", "frt": "ft", "ft": "ft",
	"freeway": "fwy", "freewy": "fwy", "frway": "fwy", "frwy": "fwy", "fwy": "fwy",
	"garden": "gdn", "gardn": "gdn", "grden": "gdn", "grdn": "gdn", "gdn": "gdn",
	"gardens": "gdns", "grdns": "gdns", "gdns": "gdns",
	"gateway": "gtwy", "gatewy": "gtwy", "gatway": "gtwy", "gtway": "gtwy", "gtwy": "gtwy",
	"glen": "gln", "gln": "gln",
	"green": "grn", "grn": "grn",
	"grove": "grv", "grov": "grv", "grv": "grv",
	"harbor": "hbr", "harb": "hbr", "harbr": "hbr", "hrbor": "hbr", "harbour": "hbr", "hbr": "hbr",
	"haven": "hvn", "hvn": "hvn",
	"heights": "hts", "ht": "hts", "hts": "hts",
	"highway": "hwy", "highwy": "hwy", "hiway": "hwy", "hiwy": "hwy", "hway": "hwy", "hwy": "hwy",
	"hill": "hl", "hl": "hl", "hills": "hls", "hls": "hls",
	"hollow": "holw", "hllw": "holw", "hollows": "holw", "holws": "holw", "holw": "holw",
	"inlet": "inlt", "inlt": "inlt",
	"island": "is", "islnd": "is", "is": "is", "islands": "iss", "iss": "iss",
	"isle": "isle", "isles": "isle",
	"junction": "jct", "jction": "jct", "jctn": "jct", "junctn": "jct", "juncton": "jct", "jct": "jct",
	"key": "ky", "ky": "ky", "keys": "kys", "kys": "kys",
	"knoll": "knl", "knol": "knl", "knl": "knl",
	"lake": "lk", "lk": "lk", "lakes": "lks", "lks": "lks",
	"landing": "lndg", "lndng": "lndg", "lndg": "lndg",
	"lane": "ln", "ln": "ln",
	"light": "lgt", "lgt": "lgt",
	"loop": "loop", "loops": "loop",
	"mall": "mall",
	"manor": "mnr", "mnr": "mnr",
	"meadow": "mdw", "mdw": "mdw", "meadows": "mdws", "mdws": "mdws",
	"mews": "mews",
	"mill": "ml", "ml": "ml", "mills": "mls", "mls": "mls",
	"mission": "msn", "missn": "msn", "mssn": "msn", "msn": "msn",
	"motorway": "mtwy", "mtwy": "mtwy",
	"mount": "mt", "mnt": "mt", "mt": "mt",
	"mountain": "mtn", "mntain": "mtn", "mntn": "mtn", "mountin": "mtn", "mtin": "mtn", "mtn": "mtn",
	"neck": "nck", "nck": "nck",
	"orchard": "orch", "orchrd": "orch", "orch": "orch",
	"oval": "oval", "ovl": "oval",
	"overpass": "opas", "opas": "opas",
	"park": "park", "prk": "park", "parks": "park",
	"parkway": "pkwy", "parkwy": "pkwy", "pkway": "pkwy", "pky": "pkwy", "pkwy": "pkwy", "parkways": "pkwy", "pkwys": "pkwy",
	"pass": "pass", "passage": "psge", "psge": "psge",
	"path": "path", "paths": "path",
	"pike": "pike", "pikes": "pike",
	"pine": "pne", "pines": "pnes", "pnes": "pnes",
	"place": "pl", "pl": "pl",
	"plain": "pln", "pln": "pln", "plains": "plns", "plns": "plns",
	"plaza": "plz", "plza": "plz", "plz": "plz",
	"point": "pt", "pt": "pt", "points": "pts", "pts": "pts",
	"port": "prt", "prt": "prt", "ports": "prts", "prts": "prts",
	"prairie": "pr", "prr": "pr",
	"radial": "radl", "rad": "radl", "radiel": "radl", "radl": "radl",
	"ramp": "ramp",
	"ranch": "rnch", "ranches": "rnch", "rnch": "rnch", "rnchs": "rnch",
	"rapid": "rpd", "rpd": "rpd", "rapids": "rpds", "rpds": "rpds",
	"rest": "rst", "rst": "rst",
	"ridge": "rdg", "rdge": "rdg", "rdg": "rdg", "ridges": "rdgs", "rdgs": "rdgs",
	"river": "riv", "rvr": "riv", "rivr": "riv", "riv": "riv",
	"road": "rd", "rd": "rd", "roads": "rds", "rds": "rds",
	"route": "rte", "rte": "rte",
	"row": "row",
	"rue": "rue",
	"run": "run",
	"shoal": "shl", "shl": "shl",
	"shore": "shr", "shoar": "shr", "shr": "shr", "shores": "shrs", "shrs": "shrs",
	"skyway": "skwy", "skwy": "skwy",
	"spring": "spg", "spng": "spg", "sprng": "spg", "spg": "spg", "springs": "spgs", "spgs": "spgs",
	"spur": "spur", "spurs": "spur",
	"square": "sq", "sqr": "sq", "sqre": "sq", "squ": "sq", "sq": "sq", "squares": "sqs", "sqs": "sqs",
	"station": "sta", "statn": "sta", "stn": "sta", "sta": "sta",
	"stravenue": "stra", "strav": "stra", "stra": "stra",
	"stream": "strm", "streme": "strm", "strm": "strm",
	"street": "st", "strt": "st", "str": "st", "st": "st", "streets": "sts", "sts": "sts",
	"summit": "smt", "sumit": "smt", "sumitt": "smt", "smt": "smt",
	"terrace": "ter", "terr": "ter", "ter": "ter",
	"throughway": "trwy", "trwy": "trwy",
	"trace": "trce", "traces": "trce", "trce": "trce",
	"track": "trak", "tracks": "trak", "trk": "trak", "trks": "trak", "trak": "trak",
	"trafficway": "trfy", "trfy": "trfy",
	"trail": "trl", "trails": "trl", "trls": "trl", "trl": "trl",
	"trailer": "trlr", "trlrs": "trlr", "trlr": "trlr",
	"tunnel": "tunl", "tunel": "tunl", "tunls": "tunl", "tunnels": "tunl", "tunnl": "tunl", "tunl": "tunl",
	"turnpike": "tpke", "trnpk": "tpke", "turnpk": "tpke", "tpke": "tpke",
	"underpass": "upas", "upas": "upas",
	"union": "un", "un": "un",
	"valley": "vly", "vally": "vly", "vlly": "vly", "vly": "vly",
	"viaduct": "via", "vdct": "via", "viadct": "via", "via": "via",
	"view": "vw", "vw": "vw", "views": "vws", "vws": "vws",
	"village": "vlg", "vill": "vlg", "villag": "vlg", "villg": "vlg", "vlg": "vlg",
	"ville": "vl", "vl": "vl",
	"vista": "vis", "vist": "vis", "vst": "vis", "vsta": "vis", "vis": "vis",
	"walk": "walk", "walks": "walk",
	"wall": "wall",
	"way": "way", "wy": "way", "ways": "ways",
	"well": "wl", "wl": "wl", "wells": "wls", "wls": "wls",
})

// routeTypes are the street types that are followed by a route number rather
// than preceded by a name ("Highway 7", "County Road 12").
var routeTypes = New(map[string]string{
	"highway": "hwy", "hwy": "hwy", "hiway": "hwy",
	"state highway": "hwy", "us highway": "hwy", "provincial highway": "hwy",
	"route": "rte", "rte": "rte", "state route": "rte", "us route": "rte",
	"county road": "co rd", "county rd": "co rd", "co rd": "co rd",
	"farm to market road": "fm", "farm to market": "fm", "fm": "fm",
	"interstate": "i", "autoroute": "aut",
	"concession": "conc", "conc": "conc",
	"range road": "rge rd", "township road": "twp rd",
})

// frenchTypes precede the name in Canadian French addresses ("Rue Main").
var frenchTypes = New(map[string]string{
	"rue": "rue", "avenue": "av", "av": "av",
	"boulevard": "boul", "boul": "boul", "blvd": "boul",
	"chemin": "ch", "ch": "ch",
	"montée": "mtée", "montee": "mtée", "mtée": "mtée",
	"côte": "côte",
	"allée": "allée",
	"impasse": "imp", "imp": "imp",
	"promenade": "prom", "prom": "prom",
	"croissant": "crois", "crois": "crois",
	"terrasse": "tsse", "tsse": "tsse",
	"place": "pl",
	"rang": "rang",
	"ruelle": "rle",
	"sentier": "sent",
	"voie": "voie",
	"carré": "car",
	"cours": "crs",
	"route": "rte",
	"autoroute": "aut",
	"square": "sq",
	"quai": "quai",
	"esplanade": "espl",
})

// unitTypes designate a secondary unit that carries a number or letter.
var unitTypes = New(map[string]string{
	"apartment": "Apt", "apt": "Apt", "app": "Apt", "appt": "Apt", "appartement": "Apt",
	"suite": "Ste", "ste": "Ste",
	"unit": "Unit", "unité": "Unit", "unite": "Unit",
	"building": "Bldg", "bldg": "Bldg",
	"floor": "Fl", "fl": "Fl", "flr": "Fl", "étage": "Fl",
	"room": "Rm", "rm": "Rm",
	"department": "Dept", "dept": "Dept",
	"lot": "Lot",
	"trailer": "Trlr", "trlr": "Trlr",
	"space": "Spc", "spc": "Spc",
	"hangar": "Hngr", "hngr": "Hngr",
	"pier": "Pier",
	"slip": "Slip",
	"stop": "Stop",
	"penthouse": "Ph", "ph": "Ph",
	"office": "Ofc", "ofc": "Ofc",
	"bureau": "Bureau",
	"key": "Key",
})

// bareUnitTypes designate a secondary unit on their own, without a number.
var bareUnitTypes = New(map[string]string{
	"lobby": "Lbby", "lbby": "Lbby",
	"basement": "Bsmt", "bsmt": "Bsmt",
	"front": "Frnt", "frnt": "Frnt",
	"rear": "Rear",
	"upper": "Uppr", "uppr": "Uppr",
	"lower": "Lowr", "lowr": "Lowr",
	"side": "Side",
	"penthouse": "Ph", "ph": "Ph",
	"office": "Ofc", "ofc": "Ofc",
})

var usStates = New(map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"district of columbia": "DC", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT", "nebraska": "NE",
	"nevada": "NV", "new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND", "ohio": "OH",
	"oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "tennessee": "TN", "texas": "TX",
	"utah": "UT", "vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
	"puerto rico": "PR", "guam": "GU", "virgin islands": "VI", "us virgin islands": "VI",
	"american samoa": "AS", "northern mariana islands": "MP",
	"armed forces americas": "AA", "armed forces europe": "AE", "armed forces pacific": "AP",
})

var caProvinces = New(map[string]string{
	"alberta": "AB", "alta": "AB",
	"british columbia": "BC", "colombie-britannique": "BC",
	"manitoba": "MB",
	"new brunswick": "NB", "nouveau-brunswick": "NB",
	"newfoundland and labrador": "NL", "newfoundland": "NL", "terre-neuve-et-labrador": "NL",
	"nova scotia": "NS", "nouvelle-écosse": "NS", "nouvelle-ecosse": "NS",
	"northwest territories": "NT", "territoires du nord-ouest": "NT",
	"nunavut": "NU",
	"ontario": "ON", "ont": "ON",
	"prince edward island": "PE", "île-du-prince-édouard": "PE", "ile-du-prince-edouard": "PE", "pei": "PE",
	"quebec": "QC", "québec": "QC", "que": "QC",
	"saskatchewan": "SK", "sask": "SK",
	"yukon": "YT",
})

// Postal abbreviations that are not canonical but appear in the wild.
var caProvinceAliases = map[string]string{
	"pq": "QC", "nf": "NL", "yk": "YT",
}

var countries = New(map[string]string{
	"usa": CountryUS, "u.s.a.": CountryUS, "u.s.a": CountryUS, "u.s.": CountryUS,
	"united states": CountryUS, "united states of america": CountryUS,
	"canada": CountryCA,
})

var poBoxIndicators = New(map[string]string{
	"po box": "PO Box", "p.o. box": "PO Box", "p. o. box": "PO Box", "p.o box": "PO Box",
	"p o box": "PO Box", "p.o.box": "PO Box", "pobox": "PO Box", "po. box": "PO Box",
	"post office box": "PO Box", "box": "PO Box",
	"c.p.": "PO Box", "c. p.": "PO Box", "cp": "PO Box",
	"case postale": "PO Box", "boîte postale": "PO Box", "boite postale": "PO Box",
	"b.p.": "PO Box",
})

var ruralRouteIndicators = New(map[string]string{
	"rr": "RR", "r.r.": "RR", "r. r.": "RR", "rural route": "RR", "route rurale": "RR",
})

var rpoIndicators = New(map[string]string{
	"rpo": "RPO", "r.p.o.": "RPO", "retail postal outlet": "RPO",
})

var stationIndicators = New(map[string]string{
	"station": "Station", "stn": "Station", "stn.": "Station", "sta": "Station",
	"postal station": "Station",
	"succursale": "Station", "succ": "Station", "succ.": "Station",
})

var generalDelivery = New(map[string]string{
	"general delivery": "General Delivery", "gd": "General Delivery",
	"poste restante": "General Delivery",
})

var connectors = New(map[string]string{
	"and": "&", "&": "&", "at": "@", "@": "@",
})

var facilityKeywords = New(map[string]string{
	"building": "building", "tower": "tower", "towers": "tower",
	"center": "center", "centre": "center",
	"mall": "mall", "plaza": "plaza", "market": "market",
	"hospital": "hospital", "clinic": "clinic", "medical center": "hospital",
	"university": "university", "college": "college", "school": "school",
	"academy": "school", "institute": "institute", "campus": "campus",
	"library": "library", "museum": "museum", "gallery": "gallery",
	"theatre": "theatre", "theater": "theatre", "auditorium": "theatre",
	"stadium": "stadium", "arena": "arena", "coliseum": "arena", "field": "stadium",
	"airport": "airport", "terminal": "terminal",
	"hotel": "hotel", "motel": "hotel", "inn": "hotel", "resort": "hotel", "lodge": "hotel",
	"church": "church", "cathedral": "church", "chapel": "church",
	"temple": "temple", "mosque": "temple", "synagogue": "temple",
	"hall": "hall", "city hall": "hall", "courthouse": "courthouse", "capitol": "capitol",
	"memorial": "memorial", "monument": "memorial",
	"complex": "complex", "headquarters": "headquarters", "embassy": "embassy",
	"consulate": "embassy", "zoo": "zoo", "pavilion": "pavilion",
	"bank": "bank", "station": "station", "factory": "factory", "warehouse": "warehouse",
	// French
	"édifice": "building", "hôpital": "hospital", "hopital": "hospital",
	"université": "university", "école": "school", "ecole": "school",
	"musée": "museum", "bibliothèque": "library", "église": "church",
	"gare": "station", "tour": "tower",
})

// titleCaseConnectors are ignored by the Title-Case facility test.
var titleCaseConnectors = map[string]bool{
	"of": true, "the": true, "and": true, "at": true, "on": true, "in": true,
	"for": true, "de": true, "du": true, "des": true, "la": true, "le": true,
	"les": true, "d'": true, "l'": true, "&": true, "a": true, "an": true,
}

func Directionals() Dict { return directionals }

func StreetTypes() Dict { return streetTypes }

func RouteTypes() Dict { return routeTypes }

func FrenchStreetTypes() Dict { return frenchTypes }

func UnitTypes() Dict { return unitTypes }

func BareUnitTypes() Dict { return bareUnitTypes }

func Countries() Dict { return countries }

func POBoxIndicators() Dict { return poBoxIndicators }

func RuralRouteIndicators() Dict { return ruralRouteIndicators }

func RPOIndicators() Dict { return rpoIndicators }

func StationIndicators() Dict { return stationIndicators }

func GeneralDelivery() Dict { return generalDelivery }

func Connectors() Dict { return connectors }

func FacilityKeywords() Dict { return facilityKeywords }

// TitleCaseConnectors returns a copy of the words the Title-Case facility
// test skips.
func TitleCaseConnectors() map[string]bool {
	out := make(map[string]bool, len(titleCaseConnectors))
	for k, v := range titleCaseConnectors {
		out[k] = v
	}
	return out
}
