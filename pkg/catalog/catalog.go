// Package catalog provides the built-in schema templates used to seed a
// new document. Every template is a pure factory: each call builds the
// tree from scratch, so field ids are fresh on every use and no template
// state is shared between documents or sessions.
package catalog

import "github.com/mesh-intelligence/stencil/pkg/types"

// Template pairs a stable template name with its factory.
type Template struct {
	Name        string
	Description string
	Build       func() *types.Schema
}

// Templates returns the built-in templates in display order. The slice and
// its entries are built fresh per call.
func Templates() []Template {
	return []Template{
		{Name: "user", Description: "User profile with contact details", Build: User},
		{Name: "product", Description: "Product listing with pricing and tags", Build: Product},
		{Name: "address", Description: "Postal address", Build: Address},
		{Name: "blog-post", Description: "Blog post with author and tags", Build: BlogPost},
		{Name: "order", Description: "Order with nested line items", Build: Order},
		{Name: "matrix", Description: "Numeric grid (array of arrays)", Build: Matrix},
	}
}

// Names returns the template names in display order.
func Names() []string {
	templates := Templates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// Get builds a fresh schema for the named template. The second return is
// false if the name is not a built-in template.
func Get(name string) (*types.Schema, bool) {
	for _, t := range Templates() {
		if t.Name == name {
			return t.Build(), true
		}
	}
	return nil, false
}

// User is a flat profile schema: six leaf fields, no nesting.
func User() *types.Schema {
	return types.NewSchema("user", "User profile with contact details",
		types.NewTextField("firstName", &types.StringLogic{Required: true, MinLength: types.Int(2), MaxLength: types.Int(50)}),
		types.NewTextField("lastName", &types.StringLogic{Required: true, MinLength: types.Int(2), MaxLength: types.Int(50)}),
		types.NewEmailField("email", &types.StringLogic{Required: true}),
		types.NewNumberField("age", &types.NumberLogic{Min: types.Float(18), Max: types.Float(99)}),
		types.NewBooleanField("isActive", false),
		types.NewDateField("createdAt", false),
	)
}

// Product is a product listing with an enum category and tag/image arrays.
func Product() *types.Schema {
	return types.NewSchema("product", "Product listing with pricing and tags",
		types.NewTextField("name", &types.StringLogic{Required: true, MinLength: types.Int(3), MaxLength: types.Int(100)}),
		types.NewTextField("description", &types.StringLogic{MaxLength: types.Int(500)}),
		types.NewNumberField("price", &types.NumberLogic{Required: true, Min: types.Float(0.01)}),
		types.NewTextField("category", &types.StringLogic{Enum: []string{"electronics", "clothing", "home", "sports", "other"}}),
		types.NewBooleanField("inStock", true),
		types.NewArrayField("tags",
			types.NewTextField("tag", &types.StringLogic{MinLength: types.Int(2), MaxLength: types.Int(20)}),
			&types.ArrayLogic{MinItems: types.Int(1), MaxItems: types.Int(5)}),
		types.NewURLField("imageUrl", false),
	)
}

// Address is a flat postal address with pattern-constrained fields.
func Address() *types.Schema {
	return types.NewSchema("address", "Postal address",
		types.NewTextField("street", &types.StringLogic{Required: true, MaxLength: types.Int(100)}),
		types.NewTextField("city", &types.StringLogic{Required: true}),
		types.NewTextField("state", &types.StringLogic{Pattern: "^[A-Z]{2}$"}),
		types.NewTextField("zipCode", &types.StringLogic{Required: true, Pattern: `^\d{5}(-\d{4})?$`}),
		types.NewTextField("country", &types.StringLogic{Enum: []string{"US", "CA", "MX"}}),
	)
}

// BlogPost nests an author object and a tag array under the post.
func BlogPost() *types.Schema {
	return types.NewSchema("blog-post", "Blog post with author and tags",
		types.NewTextField("title", &types.StringLogic{Required: true, MinLength: types.Int(5), MaxLength: types.Int(120)}),
		types.NewTextField("slug", &types.StringLogic{Pattern: "^[a-z0-9-]+$"}),
		types.NewTextField("content", &types.StringLogic{Required: true, MinLength: types.Int(100)}),
		types.NewObjectField("author", true,
			types.NewTextField("name", &types.StringLogic{Required: true}),
			types.NewEmailField("email", nil),
			types.NewURLField("website", false),
		),
		types.NewArrayField("tags",
			types.NewTextField("tag", nil),
			&types.ArrayLogic{MaxItems: types.Int(8)}),
		types.NewBooleanField("published", false),
		types.NewDateField("publishedAt", false),
	)
}

// Order exercises an array of objects: line items under the order.
func Order() *types.Schema {
	return types.NewSchema("order", "Order with nested line items",
		types.NewTextField("orderId", &types.StringLogic{Required: true}),
		types.NewArrayField("items",
			types.NewObjectField("item", false,
				types.NewTextField("sku", &types.StringLogic{Required: true}),
				types.NewNumberField("quantity", &types.NumberLogic{Required: true, Min: types.Float(1)}),
				types.NewNumberField("unitPrice", &types.NumberLogic{Required: true, Min: types.Float(0)}),
			),
			&types.ArrayLogic{MinItems: types.Int(1), MaxItems: types.Int(10)}),
		types.NewNumberField("total", &types.NumberLogic{Min: types.Float(0)}),
		types.NewDateField("placedAt", true),
	)
}

// Matrix exercises arrays of arrays: a grid of rows of numbers.
func Matrix() *types.Schema {
	return types.NewSchema("matrix", "Numeric grid (array of arrays)",
		types.NewTextField("name", &types.StringLogic{Required: true}),
		types.NewArrayField("grid",
			types.NewArrayField("row",
				types.NewNumberField("cell", &types.NumberLogic{Min: types.Float(0), Max: types.Float(9)}),
				&types.ArrayLogic{MinItems: types.Int(2), MaxItems: types.Int(4)}),
			&types.ArrayLogic{MinItems: types.Int(2), MaxItems: types.Int(4)}),
	)
}
