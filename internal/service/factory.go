package service

import (
	"fmt"

	"github.com/fsdevblog/chama/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService    *UserService
	BatchService   *BatchService
	SavingsService *SavingsService
	PaymentService *PaymentService
}

type FactoryArgs struct {
	JWTSecret []byte
	Hasher    PasswordHasher
	Provider  MpesaProvider
	Logger    *logrus.Logger
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, err := NewUserService(unitOfWork, args.JWTSecret, args.Hasher)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	batchService, err := NewBatchService(unitOfWork)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	savingsService, err := NewSavingsService(unitOfWork)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	paymentService, err := NewPaymentService(unitOfWork, args.Provider, args.Logger)
	if err != nil {
		return nil, fmt.Errorf("service factory: %w", err)
	}

	return &AppServices{
		UserService:    userService,
		BatchService:   batchService,
		SavingsService: savingsService,
		PaymentService: paymentService,
	}, nil
}
