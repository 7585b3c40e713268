package catalog

// template describes one base product; the generator crosses every template
// with the variation list on each pass.
type template struct {
	Name     string
	Category string
	MinPrice float64
	MaxPrice float64
	Image    string
}

var categories = []string{
	"Electronics", "Fashion", "Beauty", "Gaming", "Food & Beverage",
	"Wearables", "Home & Garden", "Sports", "Books", "Toys",
}

var badges = []string{
	"Best Seller", "New", "Sale", "Popular", "Limited Edition",
	"Organic", "Pro Choice", "Trending", "Hot Deal", "Exclusive",
}

var variations = []string{"Basic", "Premium", "Deluxe", "Pro", "Standard", "Advanced", "Elite", "Ultimate"}

var colors = []string{"Black", "White", "Blue", "Red", "Green", "Silver", "Gold", "Rose Gold"}

var brands = []string{"TechPro", "StyleMax", "BeautyLux", "GameForce", "FitLife", "HomeCraft", "SportEdge"}

var templates = []template{
	{Name: "Wireless Headphones", Category: "Electronics", MinPrice: 50, MaxPrice: 300, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&h=500&fit=crop"},
	{Name: "Smart Watch", Category: "Electronics", MinPrice: 100, MaxPrice: 500, Image: "https://images.unsplash.com/photo-1544117519-31a4b1f4d69e?w=500&h=500&fit=crop"},
	{Name: "Bluetooth Speaker", Category: "Electronics", MinPrice: 30, MaxPrice: 200, Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=500&h=500&fit=crop"},
	{Name: "Gaming Mouse", Category: "Gaming", MinPrice: 25, MaxPrice: 150, Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&h=500&fit=crop"},
	{Name: "Mechanical Keyboard", Category: "Gaming", MinPrice: 80, MaxPrice: 250, Image: "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=500&h=500&fit=crop"},
	{Name: "Laptop Stand", Category: "Electronics", MinPrice: 20, MaxPrice: 100, Image: "https://images.unsplash.com/photo-1527142879-c2d3ba04349d?w=500&h=500&fit=crop"},
	{Name: "Designer Backpack", Category: "Fashion", MinPrice: 50, MaxPrice: 200, Image: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500&h=500&fit=crop"},
	{Name: "Casual T-Shirt", Category: "Fashion", MinPrice: 15, MaxPrice: 50, Image: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500&h=500&fit=crop"},
	{Name: "Denim Jeans", Category: "Fashion", MinPrice: 40, MaxPrice: 120, Image: "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500&h=500&fit=crop"},
	{Name: "Sneakers", Category: "Fashion", MinPrice: 60, MaxPrice: 300, Image: "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500&h=500&fit=crop"},
	{Name: "Leather Jacket", Category: "Fashion", MinPrice: 100, MaxPrice: 400, Image: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500&h=500&fit=crop"},
	{Name: "Skincare Set", Category: "Beauty", MinPrice: 30, MaxPrice: 150, Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=500&h=500&fit=crop"},
	{Name: "Makeup Palette", Category: "Beauty", MinPrice: 25, MaxPrice: 100, Image: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=500&h=500&fit=crop"},
	{Name: "Hair Care Bundle", Category: "Beauty", MinPrice: 35, MaxPrice: 120, Image: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=500&h=500&fit=crop"},
	{Name: "Perfume", Category: "Beauty", MinPrice: 40, MaxPrice: 200, Image: "https://images.unsplash.com/photo-1541643600914-78b084683601?w=500&h=500&fit=crop"},
	{Name: "Organic Coffee", Category: "Food & Beverage", MinPrice: 15, MaxPrice: 50, Image: "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=500&h=500&fit=crop"},
	{Name: "Tea Collection", Category: "Food & Beverage", MinPrice: 20, MaxPrice: 80, Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?w=500&h=500&fit=crop"},
	{Name: "Protein Powder", Category: "Food & Beverage", MinPrice: 30, MaxPrice: 100, Image: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=500&h=500&fit=crop"},
	{Name: "Plant Pot", Category: "Home & Garden", MinPrice: 10, MaxPrice: 50, Image: "https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500&h=500&fit=crop"},
	{Name: "Table Lamp", Category: "Home & Garden", MinPrice: 25, MaxPrice: 150, Image: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&h=500&fit=crop"},
	{Name: "Throw Pillow", Category: "Home & Garden", MinPrice: 15, MaxPrice: 60, Image: "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500&h=500&fit=crop"},
	{Name: "Yoga Mat", Category: "Sports", MinPrice: 20, MaxPrice: 80, Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=500&h=500&fit=crop"},
	{Name: "Dumbbells", Category: "Sports", MinPrice: 30, MaxPrice: 200, Image: "https://images.unsplash.com/photo-1534258936925-c58bed479fcb?w=500&h=500&fit=crop"},
	{Name: "Running Shoes", Category: "Sports", MinPrice: 50, MaxPrice: 250, Image: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&h=500&fit=crop"},
	{Name: "Programming Book", Category: "Books", MinPrice: 20, MaxPrice: 80, Image: "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=500&h=500&fit=crop"},
	{Name: "Novel Collection", Category: "Books", MinPrice: 15, MaxPrice: 60, Image: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=500&h=500&fit=crop"},
	{Name: "Building Blocks", Category: "Toys", MinPrice: 25, MaxPrice: 100, Image: "https://images.unsplash.com/photo-1558060370-d644479cb6f7?w=500&h=500&fit=crop"},
	{Name: "Action Figure", Category: "Toys", MinPrice: 15, MaxPrice: 80, Image: "https://images.unsplash.com/photo-1551650975-87deedd944c3?w=500&h=500&fit=crop"},
}
