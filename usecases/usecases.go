package usecases

import (
	"github.com/Adityakk9031/FirAgent/repositories"
	"github.com/Adityakk9031/FirAgent/usecases/document"
	"github.com/Adityakk9031/FirAgent/usecases/executor_factory"
	"github.com/Adityakk9031/FirAgent/usecases/extraction"
	"github.com/Adityakk9031/FirAgent/usecases/firid"
)

type Usecases struct {
	Repositories       repositories.Repositories
	apiVersion         string
	documentAuthority  string
	idGenerator        firid.Generator
	extractionPipeline *extraction.Pipeline
}

type Option func(*options)

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithDocumentAuthority(authority string) Option {
	return func(o *options) {
		o.documentAuthority = authority
	}
}

func WithExtractionPipeline(pipeline *extraction.Pipeline) Option {
	return func(o *options) {
		o.extractionPipeline = pipeline
	}
}

type options struct {
	apiVersion         string
	documentAuthority  string
	extractionPipeline *extraction.Pipeline
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	return Usecases{
		Repositories:       repositories,
		apiVersion:         o.apiVersion,
		documentAuthority:  o.documentAuthority,
		idGenerator:        firid.NewGenerator(),
		extractionPipeline: o.extractionPipeline,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newUsecasesWithOptions(repositories, o)
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewVersionUsecase() VersionUsecase {
	return VersionUsecase{
		ApiVersion: usecases.apiVersion,
	}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewFirUsecase() FirUsecase {
	return FirUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		analyticsCache:     usecases.Repositories.AnalyticsCache,
		idGenerator:        usecases.idGenerator,
	}
}

func (usecases *Usecases) NewFirStatusUsecase() FirStatusUsecase {
	return FirStatusUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.DbRepository,
		analyticsCache:     usecases.Repositories.AnalyticsCache,
	}
}

func (usecases *Usecases) NewSearchUsecase() SearchUsecase {
	return SearchUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewAnalyticsUsecase() AnalyticsUsecase {
	return AnalyticsUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
		cache:           usecases.Repositories.AnalyticsCache,
	}
}

func (usecases *Usecases) NewUserUsecase() UserUsecase {
	return UserUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewEvidenceUsecase() EvidenceUsecase {
	return EvidenceUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewNotificationUsecase() NotificationUsecase {
	return NotificationUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
	}
}

func (usecases *Usecases) NewExtractionUsecase() ExtractionUsecase {
	usecase := ExtractionUsecase{
		firUsecase: usecases.NewFirUsecase(),
	}
	// a nil *Pipeline stored in the interface would not compare equal to nil
	if usecases.extractionPipeline != nil {
		usecase.extractor = usecases.extractionPipeline
	}
	return usecase
}

func (usecases *Usecases) NewDocumentUsecase() DocumentUsecase {
	return DocumentUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.DbRepository,
		renderer:        document.NewRenderer(usecases.documentAuthority),
	}
}
