// Package seed loads demo users, offers and an order. Running it twice is a no-op.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"producer-market/internal/domain/user"
	"producer-market/internal/pkg/errs"
	"producer-market/internal/pkg/ptr"
	"producer-market/internal/usecase/commands"
	"producer-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	ProducerEmail = "producer@example.com"
	BuyerEmail    = "buyer@example.com"
	DemoPassword  = "Passw0rd!"
)

type Params struct {
	fx.In

	Auth   commands.AuthCommands
	Offers commands.OfferCommands
	Orders commands.OrderCommands
	Users  queries.UserReadStore
	Q      queries.OfferQueries
}

type Seeder struct {
	p Params
}

func NewSeeder(p Params) *Seeder {
	return &Seeder{p: p}
}

// Result reports what a run created.
type Result struct {
	Producer user.Principal
	Buyer    user.Principal
	Offers   int
	Orders   int
}

// Run creates the demo accounts when missing. Offers, the sample order and
// catalogSize generated listings are only added while the producer has no offers.
func (s *Seeder) Run(ctx context.Context, catalogSize int) (*Result, error) {
	producer, err := s.ensureUser(ctx, ProducerEmail, user.RoleProducer)
	if err != nil {
		return nil, err
	}
	buyer, err := s.ensureUser(ctx, BuyerEmail, user.RoleBuyer)
	if err != nil {
		return nil, err
	}
	res := &Result{Producer: producer, Buyer: buyer}

	existing, _, err := s.p.Q.ListByProducer(ctx, producer.ID, nil, 1)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		slog.Info("offers already present, skipping catalog seed")
		return res, nil
	}

	var first *queries.OfferView
	for _, in := range append(featuredOffers(), catalog(catalogSize)...) {
		o, err := s.p.Offers.Create(ctx, producer, in)
		if err != nil {
			return nil, fmt.Errorf("seed offer %q: %w", in.ProductName, err)
		}
		if first == nil {
			first = o
		}
		res.Offers++
	}

	if _, err := s.p.Orders.Place(ctx, buyer, commands.PlaceOrderInput{
		OfferID:  first.ID,
		Quantity: decimal.NewFromInt(50),
	}); err != nil {
		return nil, fmt.Errorf("seed order: %w", err)
	}
	res.Orders++

	slog.Info("seed done", "offers", res.Offers, "orders", res.Orders)
	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, email string, role user.Role) (user.Principal, error) {
	view, err := s.p.Auth.Register(ctx, commands.RegisterInput{Email: email, Password: DemoPassword, Role: role.String()})
	if errs.Is(err, commands.ErrEmailAlreadyTaken) {
		view, _, err = s.p.Users.FindByEmail(ctx, email)
	}
	if err != nil {
		return user.Principal{}, fmt.Errorf("seed user %s: %w", email, err)
	}
	r, err := user.NewRole(view.Role)
	if err != nil {
		return user.Principal{}, err
	}
	if r != role {
		return user.Principal{}, fmt.Errorf("seed user %s exists with role %s", email, r)
	}
	return user.Principal{ID: view.ID, Role: r}, nil
}

func featuredOffers() []commands.CreateOfferInput {
	return []commands.CreateOfferInput{
		{
			ProductName:     "Pellet sosnowy A1",
			ProductCategory: "Fuel",
			SKU:             ptr.Of("PEL-A1-25KG"),
			Description:     ptr.Of("Pellet 6mm, worki 25kg"),
			Quantity:        decimal.NewFromInt(1000),
			UnitOfMeasure:   "kg",
			UnitPrice:       decimal.RequireFromString("1.20"),
			Currency:        ptr.Of("PLN"),
			Location:        "Kraków",
		},
		{
			ProductName:     "Stal pręt 12mm",
			ProductCategory: "Steel",
			Description:     ptr.Of("Pręty zbrojeniowe"),
			Quantity:        decimal.NewFromInt(500),
			UnitOfMeasure:   "pcs",
			UnitPrice:       decimal.RequireFromString("9.99"),
			Currency:        ptr.Of("PLN"),
			Location:        "Katowice",
		},
	}
}

type product struct {
	name, category, unit, price, description, skuPrefix string
}

var products = []product{
	{"Brykiet dębowy premium", "Fuel", "kg", "1.45", "Brykiet 8cm, worki 10kg", "BRY-OAK"},
	{"Deska tarasowa modrzew", "Timber", "m2", "74.50", "Ryflowana, klasa A", "WOOD-TAR"},
	{"Blacha trapezowa T18", "Steel", "m2", "32.00", "Ocynkowana, grubość 0.5mm", "STEEL-T18"},
	{"Kruszywo granitowe 8-16", "Construction", "ton", "115.00", "Frakcja 8-16mm", "AGG-GRA"},
	{"Rzepak wysokoolejowy", "Agricultural", "ton", "2200.00", "Wilgotność <8%", "CROP-RZE"},
	{"Pszenica konsumpcyjna", "Agricultural", "ton", "980.00", "Białko min. 12%", "CROP-PSZ"},
	{"Granulat PP homo", "Plastics", "kg", "4.90", "MFR 12", "PP-HOMO"},
	{"Palety drewniane EUR", "Logistics", "pcs", "32.00", "Certyfikat EPAL", "PAL-EUR"},
	{"Kabel YDYp 3x2,5", "Electrical", "m", "3.20", "Do instalacji wewnętrznych", "CABLE-325"},
	{"Kartony klapowe 600x400x400", "Packaging", "pcs", "2.10", "Tektura 5-warstwowa", "BOX-640"},
}

var locations = []string{"Warszawa", "Kraków", "Gdańsk", "Wrocław", "Poznań", "Łódź", "Katowice", "Rzeszów", "Białystok", "Lublin"}

// catalog generates n listings with quantities and prices spread so filters have something to bite on.
func catalog(n int) []commands.CreateOfferInput {
	out := make([]commands.CreateOfferInput, 0, n)
	step := decimal.RequireFromString("0.05")
	for i := range n {
		p := products[i%len(products)]
		loc := locations[i%len(locations)]
		factor := decimal.NewFromInt(1).Add(step.Mul(decimal.NewFromInt(int64(i % 5))))
		out = append(out, commands.CreateOfferInput{
			ProductName:     fmt.Sprintf("%s #%d", p.name, i+1),
			ProductCategory: p.category,
			SKU:             ptr.Of(fmt.Sprintf("%s-%03d", p.skuPrefix, i+1)),
			Description:     ptr.Of(fmt.Sprintf("%s Dostawa: %s.", p.description, loc)),
			Quantity:        decimal.NewFromInt(int64(200 + 25*(i%20))),
			UnitOfMeasure:   p.unit,
			UnitPrice:       decimal.RequireFromString(p.price).Mul(factor).Round(2),
			Currency:        ptr.Of("PLN"),
			Location:        loc,
		})
	}
	return out
}
