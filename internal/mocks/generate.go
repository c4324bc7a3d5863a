package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/snapshot --output domain/snapshot --outpkg snapshotmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name GameweekSource --dir ../usecase --output usecase --outpkg usecasemock --filename gameweek_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name StandingsSource --dir ../usecase --output usecase --outpkg usecasemock --filename standings_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name EntrySource --dir ../usecase --output usecase --outpkg usecasemock --filename entry_source_mock.go
