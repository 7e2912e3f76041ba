package i18n

// supportedOrder drives matcher priority; English must stay first because it
// is the fallback for unknown tags.
var supportedOrder = []string{"en", "ms", "zh-Hant", "ja"}

var locales = map[string]map[string]string{
	"en":      en,
	"ms":      ms,
	"zh-Hant": zhHant,
	"ja":      ja,
}

// en is the authoritative table; every shipped key exists here.
var en = map[string]string{
	"category_fruits":                 "Fruits",
	"category_vegetables":             "Vegetables",
	"category_dairy":                  "Dairy",
	"category_meat_seafood":           "Meat / Seafood",
	"category_cooked_food_leftovers":  "Cooked Food / Leftovers",
	"category_beverages":              "Beverages",
	"category_snacks":                 "Snacks",
	"category_frozen":                 "Frozen",
	"category_condiments":             "Condiments",
	"category_grains":                 "Grains",
	"category_canned_food":            "Canned Food",
	"category_bakery":                 "Bakery",
	"category_eggs":                   "Eggs",
	"category_supplements":            "Supplements",
	"category_other":                  "Other",

	"location_fridge":         "Fridge",
	"location_fridge_main":    "Fridge - Main",
	"location_fridge_door":    "Fridge - Door",
	"location_fridge_crisper": "Fridge - Crisper",
	"location_freezer":        "Freezer",
	"location_pantry":         "Pantry",
	"location_counter":        "Counter",
	"location_cabinet":        "Cabinet",
	"location_spice_rack":     "Spice Rack",
	"location_other":          "Other",

	"section_customize": "Customize",
	"section_food":      "Food",
	"section_beverages": "Beverages",
	"section_other":     "Other",
	"section_kitchen":   "Kitchen",
	"section_health":    "Health",

	"state_fresh":         "Fresh",
	"state_expiring_soon": "Expiring soon",
	"state_expired":       "Expired",

	"reminder_expired_items": "You have %d expired item(s) in your inventory",
}

// ms is intentionally partial; missing keys fall back through the resolver.
var ms = map[string]string{
	"category_fruits":                "Buah-buahan",
	"category_vegetables":            "Sayur-sayuran",
	"category_dairy":                 "Tenusu",
	"category_meat_seafood":          "Daging / Makanan Laut",
	"category_cooked_food_leftovers": "Makanan Bermasak / Lebihan",
	"category_beverages":             "Minuman",
	"category_snacks":                "Snek",
	"category_frozen":                "Sejuk Beku",
	"category_canned_food":           "Makanan Tin",
	"category_other":                 "Lain-lain",

	"location_fridge":         "Peti Sejuk",
	"location_fridge_main":    "Peti Sejuk - Utama",
	"location_fridge_door":    "Peti Sejuk - Pintu",
	"location_fridge_crisper": "Peti Sejuk - Ruang Sayur",
	"location_freezer":        "Penyejuk Beku",
	"location_pantry":         "Pantri",

	"section_customize": "Suai",
	"section_food":      "Makanan",
	"section_beverages": "Minuman",
	"section_other":     "Lain-lain",

	"state_fresh":         "Segar",
	"state_expiring_soon": "Hampir luput",
	"state_expired":       "Telah luput",

	"reminder_expired_items": "Anda mempunyai %d item yang telah luput",
}

var zhHant = map[string]string{
	"category_fruits":                "水果",
	"category_vegetables":            "蔬菜",
	"category_dairy":                 "乳製品",
	"category_meat_seafood":          "肉類 / 海鮮",
	"category_cooked_food_leftovers": "熟食 / 剩菜",
	"category_beverages":             "飲料",
	"category_snacks":                "零食",
	"category_frozen":                "冷凍食品",
	"category_condiments":            "調味料",
	"category_canned_food":           "罐頭食品",
	"category_other":                 "其他",

	"location_fridge":         "冰箱",
	"location_fridge_main":    "冰箱 - 主層",
	"location_fridge_door":    "冰箱 - 門邊",
	"location_fridge_crisper": "冰箱 - 蔬果室",
	"location_freezer":        "冷凍庫",
	"location_pantry":         "食品櫃",
	"location_counter":        "流理台",

	"section_customize": "自訂",
	"section_food":      "食物",
	"section_beverages": "飲料",
	"section_other":     "其他",
	"section_kitchen":   "廚房",

	"state_fresh":         "新鮮",
	"state_expiring_soon": "即將過期",
	"state_expired":       "已過期",

	"reminder_expired_items": "您有 %d 項食品已過期",
}

var ja = map[string]string{
	"category_fruits":                "果物",
	"category_vegetables":            "野菜",
	"category_dairy":                 "乳製品",
	"category_meat_seafood":          "肉 / 魚介類",
	"category_cooked_food_leftovers": "調理済み / 残り物",
	"category_beverages":             "飲み物",
	"category_snacks":                "お菓子",
	"category_frozen":                "冷凍食品",
	"category_other":                 "その他",

	"location_fridge":         "冷蔵庫",
	"location_fridge_main":    "冷蔵庫 - メイン",
	"location_fridge_door":    "冷蔵庫 - ドア",
	"location_fridge_crisper": "冷蔵庫 - 野菜室",
	"location_freezer":        "冷凍庫",
	"location_pantry":         "パントリー",

	"section_customize": "カスタマイズ",
	"section_food":      "食品",
	"section_beverages": "飲み物",
	"section_other":     "その他",

	"state_fresh":         "新鮮",
	"state_expiring_soon": "期限間近",
	"state_expired":       "期限切れ",

	"reminder_expired_items": "期限切れの食品が %d 件あります",
}
