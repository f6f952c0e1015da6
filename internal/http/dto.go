package http

import (
	"strings"
	"time"

	"github.com/nikolayk812/indukitchen/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	Cedula    string    `json:"cedula"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion,omitempty"`
	Correo    string    `json:"correo,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

type ProductDTO struct {
	ID          int64            `json:"id"`
	Nombre      string           `json:"nombre"`
	Descripcion string           `json:"descripcion,omitempty"`
	Precio      *decimal.Decimal `json:"precio"`
	Existencia  int32            `json:"existencia"`
	Peso        *decimal.Decimal `json:"peso,omitempty"`
	Imagen      string           `json:"imagen,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitzero"`
	UpdatedAt   time.Time        `json:"updatedAt,omitzero"`
}

type CartDTO struct {
	ID          int64     `json:"id"`
	IDCliente   string    `json:"idCliente"`
	ProductoIDs []int64   `json:"productoIds"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type InvoiceDTO struct {
	ID           int64     `json:"id"`
	IDCarrito    *int64    `json:"idCarrito"`
	IDMetodoPago *int32    `json:"idMetodoPago"`
	Total        string    `json:"total,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
}

type PaymentMethodDTO struct {
	ID       int32 `json:"id"`
	Efectivo bool  `json:"efectivo"`
	Tarjeta  bool  `json:"tarjeta"`
}

type CreateCartRequestDTO struct {
	IDCliente   string  `json:"idCliente"`
	ProductoIDs []int64 `json:"productoIds"`
}

type UpdateCartRequestDTO struct {
	IDCliente string `json:"idCliente"`
}

type ProcessCartRequestDTO struct {
	Cliente      *CustomerDTO `json:"cliente"`
	ProductoIDs  []int64      `json:"productoIds"`
	IDMetodoPago *int32       `json:"idMetodoPago"`
	EmailTo      string       `json:"emailTo"`
	EmailSubject string       `json:"emailSubject"`
	EmailText    string       `json:"emailText"`
}

type CreateInvoiceRequestDTO struct {
	IDCarrito    int64  `json:"idCarrito"`
	IDMetodoPago *int32 `json:"idMetodoPago"`
}

type EmailRequestDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func mapCustomerToDTO(c domain.Customer) CustomerDTO {
	return CustomerDTO{
		Cedula:    c.ID,
		Nombre:    c.Name,
		Direccion: c.Address,
		Correo:    c.Email,
		Telefono:  c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapDTOToCustomer(dto CustomerDTO) domain.Customer {
	return domain.Customer{
		ID:      strings.TrimSpace(dto.Cedula),
		Name:    dto.Nombre,
		Address: dto.Direccion,
		Email:   strings.TrimSpace(dto.Correo),
		Phone:   dto.Telefono,
	}
}

func mapProductToDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      p.Price,
		Existencia:  p.Stock,
		Peso:        p.Weight,
		Imagen:      p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapDTOToProduct(dto ProductDTO) domain.Product {
	return domain.Product{
		ID:          dto.ID,
		Name:        dto.Nombre,
		Description: dto.Descripcion,
		Price:       dto.Precio,
		Stock:       dto.Existencia,
		Weight:      dto.Peso,
		Image:       dto.Imagen,
	}
}

func mapCartToDTO(c domain.Cart) CartDTO {
	return CartDTO{
		ID:          c.ID,
		IDCliente:   c.CustomerID,
		ProductoIDs: lo.Ternary(c.ProductIDs == nil, []int64{}, c.ProductIDs),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func mapInvoiceToDTO(i domain.Invoice) InvoiceDTO {
	var cartID *int64
	if i.CartID != 0 {
		cartID = lo.ToPtr(i.CartID)
	}

	return InvoiceDTO{
		ID:           i.ID,
		IDCarrito:    cartID,
		IDMetodoPago: i.PaymentMethodID,
		CreatedAt:    i.CreatedAt,
	}
}

func mapPaymentMethodToDTO(pm domain.PaymentMethod) PaymentMethodDTO {
	return PaymentMethodDTO{
		ID:       pm.ID,
		Efectivo: pm.Cash,
		Tarjeta:  pm.Card,
	}
}

func mapDTOToCheckoutRequest(dto ProcessCartRequestDTO) domain.CheckoutRequest {
	req := domain.CheckoutRequest{
		ProductIDs:      dto.ProductoIDs,
		PaymentMethodID: dto.IDMetodoPago,
		EmailTo:         dto.EmailTo,
		EmailSubject:    dto.EmailSubject,
		EmailBody:       dto.EmailText,
	}

	if dto.Cliente != nil {
		req.Customer = lo.ToPtr(mapDTOToCustomer(*dto.Cliente))
	}

	return req
}
