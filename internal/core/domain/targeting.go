package domain

import (
	"slices"
	"strings"
)

// Country is a targetable market identified by an ISO-like code.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Region groups countries for the "select all in region" affordance.
type Region struct {
	Name      string    `json:"name"`
	Countries []Country `json:"countries"`
}

// Codes returns the country codes of the region in catalog order.
func (r Region) Codes() []string {
	codes := make([]string, 0, len(r.Countries))
	for _, c := range r.Countries {
		codes = append(codes, c.Code)
	}
	return codes
}

// FindRegion looks a region up by its display name.
func FindRegion(name string) (Region, bool) {
	i := slices.IndexFunc(Regions, func(r Region) bool { return r.Name == name })
	if i < 0 {
		return Region{}, false
	}
	return Regions[i], true
}

// AllCountryCodes returns every catalog country code, region by region.
func AllCountryCodes() []string {
	var codes []string
	for _, r := range Regions {
		codes = append(codes, r.Codes()...)
	}
	return codes
}

// NormalizeCountry lowercases code and reports whether it is a catalog
// country.
func NormalizeCountry(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, r := range Regions {
		if slices.ContainsFunc(r.Countries, func(c Country) bool { return c.Code == code }) {
			return code, true
		}
	}
	return code, false
}

// Regions is the targeting catalog offered on the ad-creation step.
var Regions = []Region{
	{
		Name:      "Africa",
		Countries: []Country{
			{Code: "dz", Name: "Algeria"},
			{Code: "ao", Name: "Angola"},
			{Code: "bj", Name: "Benin"},
			{Code: "bw", Name: "Botswana"},
			{Code: "bf", Name: "Burkina Faso"},
			{Code: "bi", Name: "Burundi"},
			{Code: "cm", Name: "Cameroon"},
			{Code: "cv", Name: "Cape Verde"},
			{Code: "td", Name: "Chad"},
			{Code: "km", Name: "Comoros"},
			{Code: "ci", Name: "Côte d'Ivoire"},
			{Code: "cd", Name: "Democratic Republic of the Congo"},
			{Code: "dj", Name: "Djibouti"},
			{Code: "eg", Name: "Egypt"},
			{Code: "et", Name: "Ethiopia"},
			{Code: "gq", Name: "Equatorial Guinea"},
			{Code: "sz", Name: "Eswatini"},
			{Code: "ga", Name: "Gabon"},
			{Code: "gm", Name: "Gambia"},
			{Code: "gh", Name: "Ghana"},
			{Code: "gn", Name: "Guinea"},
			{Code: "gw", Name: "Guinea-Bissau"},
			{Code: "ke", Name: "Kenya"},
			{Code: "ls", Name: "Lesotho"},
			{Code: "lr", Name: "Liberia"},
			{Code: "ly", Name: "Libya"},
			{Code: "mg", Name: "Madagascar"},
			{Code: "mw", Name: "Malawi"},
			{Code: "ml", Name: "Mali"},
			{Code: "mr", Name: "Mauritania"},
			{Code: "mu", Name: "Mauritius"},
			{Code: "ma", Name: "Morocco"},
			{Code: "mz", Name: "Mozambique"},
			{Code: "na", Name: "Namibia"},
			{Code: "ne", Name: "Niger"},
			{Code: "ng", Name: "Nigeria"},
			{Code: "cg", Name: "Republic of the Congo"},
			{Code: "rw", Name: "Rwanda"},
			{Code: "st", Name: "São Tomé and Príncipe"},
			{Code: "sn", Name: "Senegal"},
			{Code: "sc", Name: "Seychelles"},
			{Code: "sl", Name: "Sierra Leone"},
			{Code: "za", Name: "South Africa"},
			{Code: "tz", Name: "Tanzania"},
			{Code: "tg", Name: "Togo"},
			{Code: "tn", Name: "Tunisia"},
			{Code: "ug", Name: "Uganda"},
			{Code: "zm", Name: "Zambia"},
			{Code: "zw", Name: "Zimbabwe"},
		},
	},
	{
		Name:      "Asia",
		Countries: []Country{
			{Code: "am", Name: "Armenia"},
			{Code: "az", Name: "Azerbaijan"},
			{Code: "bh", Name: "Bahrain"},
			{Code: "bd", Name: "Bangladesh"},
			{Code: "bt", Name: "Bhutan"},
			{Code: "bn", Name: "Brunei Darussalam"},
			{Code: "kh", Name: "Cambodia"},
			{Code: "ge", Name: "Georgia"},
			{Code: "hk", Name: "Hong Kong"},
			{Code: "in", Name: "India"},
			{Code: "id", Name: "Indonesia"},
			{Code: "iq", Name: "Iraq"},
			{Code: "il", Name: "Israel"},
			{Code: "jp", Name: "Japan"},
			{Code: "jo", Name: "Jordan"},
			{Code: "kw", Name: "Kuwait"},
			{Code: "kg", Name: "Kyrgyzstan"},
			{Code: "la", Name: "Lao People's Democratic Republic"},
			{Code: "lb", Name: "Lebanon"},
			{Code: "mo", Name: "Macao"},
			{Code: "my", Name: "Malaysia"},
			{Code: "mv", Name: "Maldives"},
			{Code: "mn", Name: "Mongolia"},
			{Code: "np", Name: "Nepal"},
			{Code: "om", Name: "Oman"},
			{Code: "pk", Name: "Pakistan"},
			{Code: "ps", Name: "Palestine"},
			{Code: "ph", Name: "Philippines"},
			{Code: "qa", Name: "Qatar"},
			{Code: "sa", Name: "Saudi Arabia"},
			{Code: "sg", Name: "Singapore"},
			{Code: "kr", Name: "South Korea"},
			{Code: "lk", Name: "Sri Lanka"},
			{Code: "tw", Name: "Taiwan"},
			{Code: "tj", Name: "Tajikistan"},
			{Code: "th", Name: "Thailand"},
			{Code: "tl", Name: "Timor-Leste"},
			{Code: "ae", Name: "United Arab Emirates"},
			{Code: "uz", Name: "Uzbekistan"},
			{Code: "vn", Name: "Vietnam"},
		},
	},
	{
		Name:      "Europe",
		Countries: []Country{
			{Code: "ax", Name: "Åland"},
			{Code: "al", Name: "Albania"},
			{Code: "ad", Name: "Andorra"},
			{Code: "ai", Name: "Anguilla"},
			{Code: "ac", Name: "Ascension"},
			{Code: "at", Name: "Austria"},
			{Code: "pt-20", Name: "Azores"},
			{Code: "es-ib", Name: "Balearic Islands"},
			{Code: "by", Name: "Belarus"},
			{Code: "be", Name: "Belgium"},
			{Code: "bm", Name: "Bermuda"},
			{Code: "ba", Name: "Bosnia"},
			{Code: "vg", Name: "British Virgin Islands"},
			{Code: "bg", Name: "Bulgaria"},
			{Code: "es-cn", Name: "Canary Islands"},
			{Code: "ky", Name: "Cayman Islands"},
			{Code: "es-ce", Name: "Ceuta"},
			{Code: "hr", Name: "Croatia"},
			{Code: "cy", Name: "Cyprus"},
			{Code: "cz", Name: "Czech Republic"},
			{Code: "dk", Name: "Denmark"},
			{Code: "ee", Name: "Estonia"},
			{Code: "fk", Name: "Falkland Islands"},
			{Code: "fo", Name: "Faroe Islands"},
			{Code: "fi", Name: "Finland"},
			{Code: "fr", Name: "France"},
			{Code: "gf", Name: "French Guiana"},
			{Code: "pf", Name: "French Polynesia"},
			{Code: "de", Name: "Germany"},
			{Code: "gi", Name: "Gibraltar"},
			{Code: "gr", Name: "Greece"},
			{Code: "gl", Name: "Greenland"},
			{Code: "gp", Name: "Guadeloupe"},
			{Code: "gg", Name: "Guernsey"},
			{Code: "hu", Name: "Hungary"},
			{Code: "is", Name: "Iceland"},
			{Code: "ie", Name: "Ireland"},
			{Code: "im", Name: "Isle of Man"},
			{Code: "it", Name: "Italy"},
			{Code: "je", Name: "Jersey"},
			{Code: "kz", Name: "Kazakhstan"},
			{Code: "xk", Name: "Kosovo"},
			{Code: "lv", Name: "Latvia"},
			{Code: "li", Name: "Liechtenstein"},
			{Code: "lt", Name: "Lithuania"},
			{Code: "lu", Name: "Luxembourg"},
			{Code: "pt-30", Name: "Madeira"},
			{Code: "mt", Name: "Malta"},
			{Code: "mq", Name: "Martinique"},
			{Code: "yt", Name: "Mayotte"},
			{Code: "es-ml", Name: "Melilla"},
			{Code: "md", Name: "Moldova"},
			{Code: "mc", Name: "Monaco"},
			{Code: "me", Name: "Montenegro"},
			{Code: "ms", Name: "Montserrat"},
			{Code: "nl", Name: "Netherlands"},
			{Code: "nc", Name: "New Caledonia"},
			{Code: "mk", Name: "North Macedonia"},
			{Code: "no", Name: "Norway"},
			{Code: "pn", Name: "Pitcairn Islands"},
			{Code: "pl", Name: "Poland"},
			{Code: "pt", Name: "Portugal"},
			{Code: "ro", Name: "Romania"},
			{Code: "re", Name: "Réunion"},
			{Code: "bl", Name: "Saint Barthélemy"},
			{Code: "sh", Name: "Saint Helena"},
			{Code: "mf", Name: "Saint Martin"},
			{Code: "pm", Name: "Saint Pierre and Miquelon"},
			{Code: "sm", Name: "San Marino"},
			{Code: "rs", Name: "Serbia"},
			{Code: "sk", Name: "Slovakia"},
			{Code: "si", Name: "Slovenia"},
			{Code: "es", Name: "Spain"},
			{Code: "sj", Name: "Svalbard"},
			{Code: "se", Name: "Sweden"},
			{Code: "ch", Name: "Switzerland"},
			{Code: "ta", Name: "Tristan da Cunha"},
			{Code: "tr", Name: "Turkey"},
			{Code: "tc", Name: "Turks and Caicos Islands"},
			{Code: "ua", Name: "Ukraine"},
			{Code: "gb", Name: "United Kingdom"},
			{Code: "wf", Name: "Wallis and Futuna"},
		},
	},
	{
		Name:      "North America & Caribbean",
		Countries: []Country{
			{Code: "as", Name: "American Samoa"},
			{Code: "ag", Name: "Antigua and Barbuda"},
			{Code: "bs", Name: "Bahamas"},
			{Code: "bb", Name: "Barbados"},
			{Code: "bz", Name: "Belize"},
			{Code: "ca", Name: "Canada"},
			{Code: "cr", Name: "Costa Rica"},
			{Code: "cw", Name: "Curaçao"},
			{Code: "dm", Name: "Dominica"},
			{Code: "do", Name: "Dominican Republic"},
			{Code: "sv", Name: "El Salvador"},
			{Code: "gd", Name: "Grenada"},
			{Code: "gu", Name: "Guam"},
			{Code: "gt", Name: "Guatemala"},
			{Code: "ht", Name: "Haiti"},
			{Code: "hn", Name: "Honduras"},
			{Code: "jm", Name: "Jamaica"},
			{Code: "mx", Name: "Mexico"},
			{Code: "ni", Name: "Nicaragua"},
			{Code: "mp", Name: "Northern Mariana Islands"},
			{Code: "pa", Name: "Panama"},
			{Code: "pr", Name: "Puerto Rico"},
			{Code: "kn", Name: "St. Kitts and Nevis"},
			{Code: "lc", Name: "St. Lucia"},
			{Code: "vc", Name: "St. Vincent and the Grenadines"},
			{Code: "tt", Name: "Trinidad and Tobago"},
			{Code: "us", Name: "United States"},
			{Code: "um", Name: "United States Minor Outlying Islands"},
			{Code: "vi", Name: "United States Virgin Islands"},
		},
	},
	{
		Name:      "South America",
		Countries: []Country{
			{Code: "ar", Name: "Argentina"},
			{Code: "aw", Name: "Aruba"},
			{Code: "bo", Name: "Bolivia"},
			{Code: "br", Name: "Brazil"},
			{Code: "cl", Name: "Chile"},
			{Code: "co", Name: "Colombia"},
			{Code: "ec", Name: "Ecuador"},
			{Code: "gy", Name: "Guyana"},
			{Code: "py", Name: "Paraguay"},
			{Code: "pe", Name: "Peru"},
			{Code: "sx", Name: "Sint Maarten"},
			{Code: "sr", Name: "Suriname"},
			{Code: "uy", Name: "Uruguay"},
			{Code: "ve", Name: "Venezuela"},
		},
	},
	{
		Name:      "Oceania",
		Countries: []Country{
			{Code: "au", Name: "Australia"},
			{Code: "bq-bo", Name: "Bonaire"},
			{Code: "cx", Name: "Christmas Island"},
			{Code: "cc", Name: "Cocos (Keeling) Islands"},
			{Code: "ck", Name: "Cook Islands"},
			{Code: "fj", Name: "Fiji"},
			{Code: "ki", Name: "Kiribati"},
			{Code: "mh", Name: "Marshall Islands"},
			{Code: "fm", Name: "Micronesia"},
			{Code: "nr", Name: "Nauru"},
			{Code: "nz", Name: "New Zealand"},
			{Code: "nu", Name: "Niue"},
			{Code: "nf", Name: "Norfolk Island"},
			{Code: "pw", Name: "Palau"},
			{Code: "pg", Name: "Papua New Guinea"},
			{Code: "bq-sa", Name: "Saba"},
			{Code: "ws", Name: "Samoa"},
			{Code: "bq-se", Name: "Sint Eustatius"},
			{Code: "sb", Name: "Solomon Islands"},
			{Code: "tk", Name: "Tokelau"},
			{Code: "to", Name: "Tonga"},
			{Code: "tv", Name: "Tuvalu"},
			{Code: "vu", Name: "Vanuatu"},
		},
	},
}
