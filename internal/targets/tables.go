package targets

import "github.com/gcbaptista/geoquery/model"

// DefaultCountries is the built-in country table. Order is significant:
// multi-country matches are reported in table order.
var DefaultCountries = []model.CountryEntry{
	// MENA and neighbours
	{Key: "saudi arabia", ISO3: "SAU", Aliases: []string{"saudi", "ksa", "kingdom of saudi arabia", "沙特", "saudi arabia"}},
	{Key: "united arab emirates", ISO3: "ARE", Aliases: []string{"uae", "emirates", "阿联酋"}},
	{Key: "qatar", ISO3: "QAT", Aliases: []string{"qat", "卡塔尔"}},
	{Key: "kuwait", ISO3: "KWT", Aliases: []string{"kwt", "科威特"}},
	{Key: "bahrain", ISO3: "BHR", Aliases: []string{"bhr", "巴林"}},
	{Key: "oman", ISO3: "OMN", Aliases: []string{"omn", "阿曼"}},
	{Key: "yemen", ISO3: "YEM", Aliases: []string{"yem", "也门"}},
	{Key: "jordan", ISO3: "JOR", Aliases: []string{"jor", "约旦"}},
	{Key: "lebanon", ISO3: "LBN", Aliases: []string{"lbn", "黎巴嫩"}},
	{Key: "israel", ISO3: "ISR", Aliases: []string{"isr", "以色列"}},
	{Key: "iran", ISO3: "IRN", Aliases: []string{"irn", "伊朗"}},
	{Key: "iraq", ISO3: "IRQ", Aliases: []string{"irq", "伊拉克"}},
	{Key: "turkey", ISO3: "TUR", Aliases: []string{"turkiye", "türkiye", "土耳其"}},
	{Key: "egypt", ISO3: "EGY", Aliases: []string{"egy", "埃及"}},
	{Key: "morocco", ISO3: "MAR", Aliases: []string{"mar", "摩洛哥"}},
	{Key: "algeria", ISO3: "DZA", Aliases: []string{"dza", "阿尔及利亚"}},
	{Key: "tunisia", ISO3: "TUN", Aliases: []string{"tun", "突尼斯"}},

	// Sub-Saharan Africa
	{Key: "ghana", ISO3: "GHA", Aliases: []string{"gha", "加纳", "ghana"}},
	{Key: "nigeria", ISO3: "NGA", Aliases: []string{"nga", "尼日利亚", "nigeria"}},
	{Key: "ethiopia", ISO3: "ETH", Aliases: []string{"eth", "埃塞俄比亚", "ethiopia"}},
	{Key: "kenya", ISO3: "KEN", Aliases: []string{"ken", "肯尼亚", "kenya"}},
	{Key: "south africa", ISO3: "ZAF", Aliases: []string{"zaf", "南非", "south africa"}},
	{Key: "tanzania", ISO3: "TZA", Aliases: []string{"tza", "坦桑尼亚"}},
	{Key: "uganda", ISO3: "UGA", Aliases: []string{"uga", "乌干达"}},
	{Key: "rwanda", ISO3: "RWA", Aliases: []string{"rwa", "卢旺达"}},
	{Key: "burundi", ISO3: "BDI", Aliases: []string{"bdi", "布隆迪"}},
	{Key: "democratic republic of the congo", ISO3: "COD", Aliases: []string{"drc", "congo-kinshasa", "cod", "刚果（金）"}},
	{Key: "republic of the congo", ISO3: "COG", Aliases: []string{"congo-brazzaville", "cog", "刚果（布）"}},
	{Key: "angola", ISO3: "AGO", Aliases: []string{"ago", "安哥拉"}},
	{Key: "zambia", ISO3: "ZMB", Aliases: []string{"zmb", "赞比亚"}},
	{Key: "zimbabwe", ISO3: "ZWE", Aliases: []string{"zwe", "津巴布韦"}},
	{Key: "mozambique", ISO3: "MOZ", Aliases: []string{"moz", "莫桑比克"}},
	{Key: "namibia", ISO3: "NAM", Aliases: []string{"nam", "纳米比亚"}},
	{Key: "botswana", ISO3: "BWA", Aliases: []string{"bwa", "博茨瓦纳"}},
	{Key: "cameroon", ISO3: "CMR", Aliases: []string{"cmr", "喀麦隆"}},
	{Key: "senegal", ISO3: "SEN", Aliases: []string{"sen", "塞内加尔"}},
	{Key: "cote d'ivoire", ISO3: "CIV", Aliases: []string{"côte d'ivoire", "ivory coast", "civ", "科特迪瓦"}},

	// Asia
	{Key: "china", ISO3: "CHN", Aliases: []string{"prc", "cn", "中国", "china"}},
	{Key: "india", ISO3: "IND", Aliases: []string{"ind", "印度", "india"}},
	{Key: "japan", ISO3: "JPN", Aliases: []string{"jpn", "日本"}},
	{Key: "south korea", ISO3: "KOR", Aliases: []string{"republic of korea", "rok", "kr", "韩国"}},
	{Key: "indonesia", ISO3: "IDN", Aliases: []string{"idn", "印尼"}},
	{Key: "pakistan", ISO3: "PAK", Aliases: []string{"pak", "巴基斯坦"}},
	{Key: "bangladesh", ISO3: "BGD", Aliases: []string{"bgd", "孟加拉国"}},
	{Key: "vietnam", ISO3: "VNM", Aliases: []string{"vnm", "越南"}},
	{Key: "philippines", ISO3: "PHL", Aliases: []string{"phl", "菲律宾"}},
	{Key: "thailand", ISO3: "THA", Aliases: []string{"tha", "泰国"}},

	// Europe
	{Key: "united kingdom", ISO3: "GBR", Aliases: []string{"uk", "great britain", "gb", "gbr", "英国"}},
	{Key: "france", ISO3: "FRA", Aliases: []string{"fra", "法国"}},
	{Key: "germany", ISO3: "DEU", Aliases: []string{"deu", "德国"}},
	{Key: "italy", ISO3: "ITA", Aliases: []string{"ita", "意大利"}},
	{Key: "spain", ISO3: "ESP", Aliases: []string{"esp", "西班牙"}},
	{Key: "poland", ISO3: "POL", Aliases: []string{"pol", "波兰"}},

	// Americas and Oceania
	{Key: "united states", ISO3: "USA", Aliases: []string{"usa", "us", "u.s.", "america", "美國", "美国"}},
	{Key: "canada", ISO3: "CAN", Aliases: []string{"can", "加拿大"}},
	{Key: "mexico", ISO3: "MEX", Aliases: []string{"mex", "墨西哥"}},
	{Key: "brazil", ISO3: "BRA", Aliases: []string{"bra", "巴西", "brazil"}},
	{Key: "argentina", ISO3: "ARG", Aliases: []string{"arg", "阿根廷"}},
	{Key: "chile", ISO3: "CHL", Aliases: []string{"chl", "智利"}},
	{Key: "peru", ISO3: "PER", Aliases: []string{"per", "秘鲁"}},
	{Key: "colombia", ISO3: "COL", Aliases: []string{"col", "哥伦比亚"}},
	{Key: "australia", ISO3: "AUS", Aliases: []string{"aus", "澳大利亚"}},
	{Key: "new zealand", ISO3: "NZL", Aliases: []string{"nzl", "新西兰"}},
}

// DefaultRegions is the built-in region table, consulted only when no country matches.
var DefaultRegions = []model.RegionEntry{
	{Key: "mena", Aliases: []string{"mena", "middle east and north africa", "middle east"}},
	{Key: "ssa", Aliases: []string{"ssa", "sub-saharan africa", "sub saharan africa"}},
	{Key: "asia", Aliases: []string{"asia", "asian"}},
	{Key: "europe", Aliases: []string{"europe", "eu", "european"}},
	{Key: "africa", Aliases: []string{"africa", "african"}},
	{Key: "americas", Aliases: []string{"americas", "latin america", "north america", "south america"}},
	{Key: "oceania", Aliases: []string{"oceania", "pacific"}},
}
