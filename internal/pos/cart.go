package pos

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/smartshoe/pos-api/internal/application/dto"
)

// Errores del carrito. Son errores de validación para mostrar al usuario,
// nunca terminan el flujo.
var (
	ErrOutOfStock       = errors.New("producto sin stock disponible")
	ErrExceedsStock     = errors.New("la cantidad supera el stock disponible")
	ErrLineNotFound     = errors.New("el producto no está en el carrito")
	ErrEmptyCart        = errors.New("el carrito está vacío")
	ErrSubmitInProgress = errors.New("ya hay una venta en curso")
)

// Line una línea del carrito. El precio unitario queda fijo al momento de
// agregar la línea: cambiar el tipo de venta después no la reprecia (hay que
// quitarla y volverla a agregar). Stock es el último tope conocido: se
// refresca cada vez que el producto se vuelve a agregar.
type Line struct {
	ProductID   string
	ProductName string
	Brand       string
	Size        string
	Color       string
	Quantity    int
	UnitPrice   decimal.Decimal
	Stock       int
}

// Subtotal cantidad × precio unitario.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart la venta en construcción: líneas ordenadas por inserción más el tipo
// de venta vigente para las líneas nuevas.
type Cart struct {
	saleType string
	lines    []*Line
}

// NewCart crea un carrito vacío con el tipo de venta inicial.
func NewCart(saleType string) *Cart {
	return &Cart{saleType: saleType}
}

// SaleType devuelve el tipo de venta vigente.
func (c *Cart) SaleType() string {
	return c.saleType
}

// SetSaleType cambia el tipo de venta para las líneas que se agreguen después.
// Las líneas existentes conservan su precio.
func (c *Cart) SetSaleType(saleType string) {
	c.saleType = saleType
}

// Add agrega una unidad del producto. Si ya hay una línea, incrementa la
// cantidad respetando el tope de stock; si no, crea la línea con cantidad 1
// y el precio resuelto contra el tipo de venta vigente.
func (c *Cart) Add(product *dto.ProductResponse) error {
	if product.CurrentStock <= 0 {
		return ErrOutOfStock
	}
	if line := c.find(product.ID); line != nil {
		// El producto viene recién cargado: su stock es más fresco que el
		// snapshot de la línea.
		line.Stock = product.CurrentStock
		if line.Quantity+1 > line.Stock {
			return ErrExceedsStock
		}
		line.Quantity++
		return nil
	}
	c.lines = append(c.lines, &Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		Brand:       product.Brand,
		Size:        product.Size,
		Color:       product.Color,
		Quantity:    1,
		UnitPrice:   ResolvePrice(product, c.saleType),
		Stock:       product.CurrentStock,
	})
	return nil
}

// SetQuantity fija la cantidad de una línea. Cero o negativo la elimina;
// por encima del stock se rechaza y el carrito queda igual. El precio
// unitario no se re-resuelve.
func (c *Cart) SetQuantity(productID string, quantity int) error {
	line := c.find(productID)
	if line == nil {
		return ErrLineNotFound
	}
	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}
	if quantity > line.Stock {
		return ErrExceedsStock
	}
	line.Quantity = quantity
	return nil
}

// Remove elimina la línea del producto sin condiciones.
func (c *Cart) Remove(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total suma de los subtotales. Cero para un carrito vacío.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Clear vacía el carrito. Se usa tras completar la venta.
func (c *Cart) Clear() {
	c.lines = nil
}

// Len número de líneas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

func (c *Cart) find(productID string) *Line {
	for _, line := range c.lines {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}
