package mongo

import (
	"context"
	"fmt"
	"sync"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUnitOfWork implements the Unit of Work pattern for MongoDB
type MongoUnitOfWork struct {
	client        *mongo.Client
	database      *mongo.Database
	session       mongo.Session
	mutex         sync.RWMutex
	inTransaction bool

	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	serviceRepo repository.ServiceRepository
	paymentRepo repository.PaymentRepository
}

// NewMongoUnitOfWork creates a new MongoDB unit of work
func NewMongoUnitOfWork(client *mongo.Client, database *mongo.Database) *MongoUnitOfWork {
	return &MongoUnitOfWork{
		client:   client,
		database: database,
	}
}

// Begin starts a new transaction
func (uow *MongoUnitOfWork) Begin(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.inTransaction {
		return fmt.Errorf("unit of work is already in transaction")
	}

	session, err := uow.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	uow.session = session
	uow.inTransaction = true
	uow.setTransactionForRepositories()

	return nil
}

// Commit commits the current transaction
func (uow *MongoUnitOfWork) Commit(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if !uow.inTransaction {
		return fmt.Errorf("no active transaction to commit")
	}

	if err := uow.session.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	uow.endTransaction(ctx)
	return nil
}

// Rollback rolls back the current transaction
func (uow *MongoUnitOfWork) Rollback(ctx context.Context) error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if !uow.inTransaction {
		return fmt.Errorf("no active transaction to rollback")
	}

	if err := uow.session.AbortTransaction(ctx); err != nil {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	uow.endTransaction(ctx)
	return nil
}

// UserRepository returns the user repository
func (uow *MongoUnitOfWork) UserRepository() repository.UserRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.userRepo == nil {
		uow.userRepo = NewMongoUserRepository(uow.database)
		if uow.inTransaction {
			if transactionalRepo, ok := uow.userRepo.(repository.TransactionalRepository); ok {
				transactionalRepo.SetTransaction(uow.session)
			}
		}
	}

	return uow.userRepo
}

// BookingRepository returns the booking repository
func (uow *MongoUnitOfWork) BookingRepository() repository.BookingRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.bookingRepo == nil {
		uow.bookingRepo = NewMongoBookingRepository(uow.database)
		if uow.inTransaction {
			if transactionalRepo, ok := uow.bookingRepo.(repository.TransactionalRepository); ok {
				transactionalRepo.SetTransaction(uow.session)
			}
		}
	}

	return uow.bookingRepo
}

// ServiceRepository returns the service repository
func (uow *MongoUnitOfWork) ServiceRepository() repository.ServiceRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.serviceRepo == nil {
		uow.serviceRepo = NewMongoServiceRepository(uow.database)
		if uow.inTransaction {
			if transactionalRepo, ok := uow.serviceRepo.(repository.TransactionalRepository); ok {
				transactionalRepo.SetTransaction(uow.session)
			}
		}
	}

	return uow.serviceRepo
}

// PaymentRepository returns the payment repository
func (uow *MongoUnitOfWork) PaymentRepository() repository.PaymentRepository {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.paymentRepo == nil {
		uow.paymentRepo = NewMongoPaymentRepository(uow.database)
		if uow.inTransaction {
			if transactionalRepo, ok := uow.paymentRepo.(repository.TransactionalRepository); ok {
				transactionalRepo.SetTransaction(uow.session)
			}
		}
	}

	return uow.paymentRepo
}

// Close closes the unit of work and cleans up resources
func (uow *MongoUnitOfWork) Close() error {
	uow.mutex.Lock()
	defer uow.mutex.Unlock()

	if uow.inTransaction && uow.session != nil {
		ctx := context.Background()
		uow.session.AbortTransaction(ctx)
		uow.endTransaction(ctx)
	}

	return nil
}

// IsInTransaction returns whether the unit of work is in a transaction
func (uow *MongoUnitOfWork) IsInTransaction() bool {
	uow.mutex.RLock()
	defer uow.mutex.RUnlock()
	return uow.inTransaction
}

// endTransaction cleans up transaction resources
func (uow *MongoUnitOfWork) endTransaction(ctx context.Context) {
	if uow.session != nil {
		uow.session.EndSession(ctx)
		uow.session = nil
	}
	uow.inTransaction = false
	uow.clearTransactionFromRepositories()
}

func (uow *MongoUnitOfWork) setTransactionForRepositories() {
	for _, repo := range uow.transactionalRepositories() {
		repo.SetTransaction(uow.session)
	}
}

func (uow *MongoUnitOfWork) clearTransactionFromRepositories() {
	for _, repo := range uow.transactionalRepositories() {
		repo.SetTransaction(nil)
	}
}

func (uow *MongoUnitOfWork) transactionalRepositories() []repository.TransactionalRepository {
	var repos []repository.TransactionalRepository
	for _, candidate := range []interface{}{uow.userRepo, uow.bookingRepo, uow.serviceRepo, uow.paymentRepo} {
		if candidate == nil {
			continue
		}
		if transactionalRepo, ok := candidate.(repository.TransactionalRepository); ok {
			repos = append(repos, transactionalRepo)
		}
	}
	return repos
}

// MongoUnitOfWorkFactory creates MongoDB unit of work instances
type MongoUnitOfWorkFactory struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoUnitOfWorkFactory creates a new MongoDB unit of work factory
func NewMongoUnitOfWorkFactory(client *mongo.Client, database *mongo.Database) *MongoUnitOfWorkFactory {
	return &MongoUnitOfWorkFactory{
		client:   client,
		database: database,
	}
}

// CreateUnitOfWork creates a new unit of work instance
func (f *MongoUnitOfWorkFactory) CreateUnitOfWork() repository.UnitOfWork {
	return NewMongoUnitOfWork(f.client, f.database)
}
