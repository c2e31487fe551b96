package catalog

// FallbackInventory returns the bundled catalog used whenever the remote
// endpoint is unreachable or misconfigured. Prices are in local currency.
func FallbackInventory() []Product {
	return []Product{
		{
			UUID:            "101",
			Name:            "EA Sports FC 26",
			Price:           12000,
			Category:        "Game Key",
			Platform:        "PlayStation",
			Region:          "Global",
			ImageURL:        "/images/fc26.png",
			StockStatus:     StockAvailable,
			Description:     "Full Game - PS5 Digital Key. Experience the next era of The World's Game.",
			ActivationGuide: "1. Go to PlayStation Store.\n2. Select 'Redeem Codes' from the menu.\n3. Enter the 12-digit code sent to your email.",
		},
		{
			UUID:            "102",
			Name:            "Valorant 2050 VP",
			Price:           2800,
			Category:        "Top-up",
			Platform:        "Riot Games",
			Region:          "EU",
			ImageURL:        "/images/valorant.png",
			StockStatus:     StockAvailable,
			Description:     "Instant Valorant Points. Region locked to Europe servers.",
			ActivationGuide: "1. Log into Valorant client.\n2. Click the VP icon (top right).\n3. Select 'Prepaid Cards & Codes'.\n4. Enter code.",
		},
		{
			UUID:            "103",
			Name:            "Free Fire 100 Diamonds",
			Price:           250,
			Category:        "Mobile",
			Platform:        "Garena",
			Region:          "Global",
			ImageURL:        "/images/freefire.png",
			StockStatus:     StockAvailable,
			Description:     "Direct ID Top-up. Fast and secure transfer.",
			ActivationGuide: "1. Go to shop2game.com.\n2. Select Free Fire and login with ID.\n3. Enter the Garena voucher code.",
		},
		{
			UUID:            "104",
			Name:            "PUBG Mobile 60 UC",
			Price:           180,
			Category:        "Mobile",
			Platform:        "Tencent",
			Region:          "Global",
			ImageURL:        "/images/pubg.png",
			StockStatus:     StockAvailable,
			Description:     "Global Redeem Code. Battle Royale awaits.",
			ActivationGuide: "1. Visit midasbuy.com.\n2. Select PUBG Mobile.\n3. Enter Player ID and the Redeem Code.",
		},
		{
			UUID:            "105",
			Name:            "Netflix 4K Shared",
			Price:           450,
			Category:        "Subscription",
			Platform:        "Netflix",
			Region:          "Global",
			ImageURL:        "/images/netflix.png",
			StockStatus:     StockAvailable,
			Description:     "1 Month Shared Profile. Ultra HD 4K supported.",
			ActivationGuide: "We will email you the Email and Password. Do not change the password. Select your assigned profile only.",
		},
		{
			UUID:            "106",
			Name:            "IPTV Smarters 1 Year",
			Price:           3500,
			Category:        "Subscription",
			Platform:        "IPTV",
			Region:          "Global",
			ImageURL:        "/images/iptv.png",
			StockStatus:     StockAvailable,
			Description:     "Stable 4K/FHD Server. All sports channels included.",
			ActivationGuide: "We will send Xtream API details (URL, Username, Password). Enter them into IPTV Smarters Pro app.",
		},
		{
			UUID:            "107",
			Name:            "Windows 11 Pro",
			Price:           1500,
			Category:        "Software",
			Platform:        "Microsoft",
			Region:          "Global",
			ImageURL:        "/images/win11.png",
			StockStatus:     StockAvailable,
			Description:     "Lifetime OEM Key for 1 PC. Genuine activation.",
			ActivationGuide: "1. Go to Settings > System > Activation.\n2. Click 'Change Product Key'.\n3. Enter the key.",
		},
		{
			UUID:            "108",
			Name:            "Steam Wallet $20",
			Price:           4200,
			Category:        "Gift Card",
			Platform:        "Steam",
			Region:          "US",
			ImageURL:        "/images/steam.png",
			StockStatus:     StockAvailable,
			Description:     "US Region Account Required. Access thousands of games.",
			ActivationGuide: "1. Open Steam.\n2. Go to 'Games' menu > 'Redeem a Steam Wallet Code'.\n3. Enter code.",
		},
		{
			UUID:            "109",
			Name:            "Kaspersky Total Security",
			Price:           2200,
			Category:        "Software",
			Platform:        "Antivirus",
			Region:          "Global",
			ImageURL:        "/images/kaspersky.png",
			StockStatus:     StockAvailable,
			Description:     "1 Year / 1 Device protection. Internet security suite.",
			ActivationGuide: "1. Download software from Kaspersky official site.\n2. Install and open.\n3. Enter activation code when prompted.",
		},
		{
			UUID:            "110",
			Name:            "Roblox 800 Robux",
			Price:           1800,
			Category:        "Mobile",
			Platform:        "Roblox",
			Region:          "Global",
			ImageURL:        "/images/roblox.png",
			StockStatus:     StockAvailable,
			Description:     "Digital code for Robux. Build your virtual world.",
			ActivationGuide: "1. Go to roblox.com/redeem.\n2. Log in.\n3. Enter your code.",
		},
	}
}
