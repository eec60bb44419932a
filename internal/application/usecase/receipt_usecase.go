package usecase

import (
	"context"

	"github.com/jhoicas/restaurante-api/internal/domain"
	"github.com/jhoicas/restaurante-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-api/internal/domain/repository"
)

// ReceiptPDFGenerator es el puerto de generación del comprobante en PDF.
// Lo implementa infrastructure/pdf; el uso de interfaz mantiene la dirección
// de dependencias hacia el dominio.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}

// ReceiptUseCase genera el comprobante PDF de un pedido.
type ReceiptUseCase struct {
	orders repository.OrderRepository
	pdf    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orders repository.OrderRepository, pdf ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, pdf: pdf}
}

// Generate devuelve los bytes del PDF del pedido. Solo el dueño del pedido
// o un admin pueden pedirlo (ErrForbidden); un id inexistente devuelve ErrNotFound.
func (uc *ReceiptUseCase) Generate(ctx context.Context, orderID, actorID, actorRol string) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if actorRol != entity.RolAdmin && order.Cliente != actorID {
		return nil, domain.ErrForbidden
	}
	return uc.pdf.GenerateReceiptPDF(ctx, order)
}
