//go:generate mockgen -source=../order_repository.go   -destination=./mock_order_repository.go   -package=mocks
//go:generate mockgen -source=../branch_source.go      -destination=./mock_branch_source.go      -package=mocks
//go:generate mockgen -source=../loyalty_repository.go -destination=./mock_loyalty_repository.go -package=mocks
//go:generate mockgen -source=../order_validator.go    -destination=./mock_order_validator.go    -package=mocks
//go:generate mockgen -source=../weather_provider.go   -destination=./mock_weather_provider.go   -package=mocks
//go:generate mockgen -source=../services.go           -destination=./mock_services.go           -package=mocks

package mocks
