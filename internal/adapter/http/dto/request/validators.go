package request

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"estetica_pro/internal/domain/entities"
)

// RegisterCustomValidators installs the domain validations referenced by
// binding tags. Call once at startup before the router accepts traffic.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("vehiclesize", func(fl validator.FieldLevel) bool {
		switch entities.VehicleSize(fl.Field().String()) {
		case entities.VehicleSizeSmall, entities.VehicleSizeMedium, entities.VehicleSizeLarge, entities.VehicleSizeExtra:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("workorderstatus", func(fl validator.FieldLevel) bool {
		switch entities.WorkOrderStatus(fl.Field().String()) {
		case entities.StatusAguardandoAprovacao, entities.StatusAguardando, entities.StatusEmAndamento,
			entities.StatusAguardandoPecas, entities.StatusControleQualidade, entities.StatusConcluido,
			entities.StatusEntregue, entities.StatusCancelado:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("discounttype", func(fl validator.FieldLevel) bool {
		switch entities.DiscountType(fl.Field().String()) {
		case entities.DiscountTypePercentage, entities.DiscountTypeValue, entities.DiscountTypeService:
			return true
		}
		return false
	})
}
