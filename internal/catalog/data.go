package catalog

// DefaultRestaurant is the built-in venue profile.
var DefaultRestaurant = Restaurant{
	Name:    "Scan To Serve",
	Address: "123 Anna Nagar, Chennai",
	Location: Location{
		Lat: 13.0827,
		Lng: 80.2707,
	},
}

var spiceLevel = Customization{
	Name: "Spice Level",
	Type: CustomizationRadio,
	Options: []CustomizationOption{
		{Name: "Mild"},
		{Name: "Medium"},
		{Name: "Spicy"},
	},
}

// DefaultMenu is the built-in menu, ordered for display.
var DefaultMenu = []MenuItem{
	{
		ID:          "1",
		Name:        "Meals",
		Description: "A traditional South Indian thali with a variety of flavorful dishes served on a banana leaf.",
		Price:       50,
		ImageURL:    "https://tse4.mm.bing.net/th/id/OIP.IRJcf5i5TN2eCVyfiKBf7QHaEK?pid=Api&P=0&h=180",
		Category:    "Main Dish",
		Rating:      5,
	},
	{
		ID:             "2",
		Name:           "Biryani",
		Description:    "Aromatic rice dish cooked with spices and marinated chicken, a true delight.",
		Price:          60,
		ImageURL:       "https://tse4.mm.bing.net/th/id/OIP.hYAWojbrro3xW62L1cH6awHaE8?pid=Api&P=0&h=180",
		Category:       "Main Dish",
		Rating:         5,
		Customizations: []Customization{spiceLevel},
	},
	{
		ID:          "3",
		Name:        "Porotta",
		Description: "Flaky, layered flatbread that is soft on the inside and crispy on the outside, served with curry.",
		Price:       15,
		ImageURL:    "https://tse1.mm.bing.net/th/id/OIP.defAkLH-UMSaNVAonf8XpwHaD2?pid=Api&P=0&h=180",
		Category:    "Main Dish",
		Rating:      4,
	},
	{
		ID:             "4",
		Name:           "Veg Biryani",
		Description:    "A fragrant and flavorful rice dish made with mixed vegetables and aromatic spices.",
		Price:          40,
		ImageURL:       "https://tse2.mm.bing.net/th/id/OIP.LadujoU81UAUhQjy9gElUwHaHa?pid=Api&P=0&h=180",
		Category:       "Main Dish",
		Rating:         4,
		Customizations: []Customization{spiceLevel},
	},
	{
		ID:          "5",
		Name:        "Vada",
		Description: "Crispy and savory deep-fried fritter made from lentils, perfect with chutney.",
		Price:       10,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.6ZNwXqoQ2tMWZuaHCTfKswHaE8?pid=Api&P=0&h=180",
		Category:    "Appetizers",
		Rating:      5,
	},
	{
		ID:          "6",
		Name:        "Chicken 65",
		Description: "Spicy, deep-fried chicken bites marinated in a blend of Indian spices.",
		Price:       30,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.oTYhQBYoVRxesB14v2JzagHaHa?pid=Api&P=0&h=180",
		Category:    "Appetizers",
		Rating:      4,
		Customizations: []Customization{
			{
				Name: "Add-ons",
				Type: CustomizationCheckbox,
				Options: []CustomizationOption{
					{Name: "Extra Curry Leaves"},
					{Name: "Lemon Squeeze"},
				},
			},
		},
	},
	{
		ID:          "7",
		Name:        "Gopi 65",
		Description: "A delicious vegetarian appetizer made with cauliflower florets, spices, and herbs.",
		Price:       20,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.ekVK-zSoYosXu05sxp8dDgHaEK?pid=Api&P=0&h=180",
		Category:    "Appetizers",
		Rating:      4,
	},
	{
		ID:          "8",
		Name:        "Bonda",
		Description: "A popular South Indian snack of deep-fried potato balls coated in gram flour batter.",
		Price:       10,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.JDexqd46ffSD5Bna6lPl3wHaEc?pid=Api&P=0&h=180",
		Category:    "Appetizers",
		Rating:      4,
	},
	{
		ID:          "9",
		Name:        "Gulab Jamun",
		Description: "Soft, spongy balls made of milk solids, soaked in a fragrant sugar syrup.",
		Price:       40,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.B32bansRI7RS3yfbUSEBNwHaHa?pid=Api&P=0&h=180",
		Category:    "Desserts",
		Rating:      5,
	},
	{
		ID:          "10",
		Name:        "Ice Cream",
		Description: "Creamy and delicious ice cream, available in various classic flavors.",
		Price:       40,
		ImageURL:    "https://tse4.mm.bing.net/th/id/OIP.0rxzPmpKezOzcYg8h5drMgHaEo?pid=Api&P=0&h=180",
		Category:    "Desserts",
		Rating:      4,
	},
	{
		ID:          "11",
		Name:        "Payasam",
		Description: "A traditional Indian pudding made with milk, sugar, and vermicelli or rice.",
		Price:       40,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.TotdtyDPRaRqNkIZq4qSlQHaE8?pid=Api&P=0&h=180",
		Category:    "Desserts",
		Rating:      4,
	},
	{
		ID:          "12",
		Name:        "Cake",
		Description: "A slice of rich and decadent chocolate cake, perfect for satisfying your sweet tooth.",
		Price:       30,
		ImageURL:    "https://tse1.mm.bing.net/th/id/OIP.7bEK8zNR1hmj63EuvmzdYgHaLH?pid=Api&P=0&h=180",
		Category:    "Desserts",
		Rating:      4,
	},
	{
		ID:          "13",
		Name:        "Juice",
		Description: "A refreshing glass of freshly squeezed fruit juice to quench your thirst.",
		Price:       20,
		ImageURL:    "https://tse3.mm.bing.net/th/id/OIP.jx61Wu1l4Mm3KOwq1sAsBwHaE8?pid=Api&P=0&h=180",
		Category:    "Beverages",
		Rating:      5,
	},
	{
		ID:          "14",
		Name:        "Coffee",
		Description: "A hot, aromatic cup of coffee, brewed to perfection for a rich taste.",
		Price:       20,
		ImageURL:    "https://tse2.mm.bing.net/th/id/OIP.pjkzdFGX7t6mmm1BxF1IkQHaE8?pid=Api&P=0&h=180",
		Category:    "Beverages",
		Rating:      4,
	},
	{
		ID:          "15",
		Name:        "Milk Shake",
		Description: "A thick and creamy milkshake, blended with ice cream and your choice of flavor.",
		Price:       40,
		ImageURL:    "https://tse2.mm.bing.net/th/id/OIP.9Gs7dhJ1Z20bRZpwx5PApQHaHa?pid=Api&P=0&h=180",
		Category:    "Beverages",
		Rating:      4,
	},
	{
		ID:          "16",
		Name:        "Soft Drinks",
		Description: "A selection of popular carbonated soft drinks to accompany your meal.",
		Price:       40,
		ImageURL:    "https://tse2.mm.bing.net/th/id/OIP.m407uzBglOolPPMZ_xyVQAHaE8?pid=Api&P=0&h=180",
		Category:    "Beverages",
		Rating:      3,
	},
}
