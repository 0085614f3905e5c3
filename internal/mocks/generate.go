package mocks

//go:generate mockery --name DocumentStore --srcpkg github.com/aevon-lab/reward-points/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
