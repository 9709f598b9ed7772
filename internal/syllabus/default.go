package syllabus

// Default is the built-in course syllabus.
const Default = `
Unit 1: Matrix and Determinant (14 Hrs)
Matrix and Determinant; Vector space (Introduction), dependent and independent vectors; Linear Transformation; System of Linear equations (Gauss Elimination method); Inverse of matrix (Gauss Jordan method); Rank of the matrix; Eigen values of matrix. Eigen vectors and its applications.

Unit 2: Derivatives (5 Hrs)
Definition of derivatives; Derivative Rules: Power, Sum, Product, Quotient, Chain rules; Derivatives of: Algebraic functions, Trigonometric functions, Exponential functions, Logarithmic functions, Inverse Trigonometric functions, Hyperbolic functions. Evaluation of limits; Using L'Hopital's Rule.

Unit 3: Integral Calculus (10 Hrs)
Indefinite and Definite integrals; Integration Formulas, Substitutions, Trigonometric Substitutions, Integration by parts; Standard Integrals, Use of partial fractions, Evaluation of integrals using standard formulas; Definite Integral and its evaluation; Applications in calculating length, surface area, volume and average value. (Common curves only); Evaluation of Improper integrals.

Unit 4: Laplace Transform (10 Hrs)
Introduction; Laplace transform of some elementary functions; Properties of Laplace transform; Inverse Laplace transforms; Application to differential equations.

Unit 5: Fourier series (6 Hrs)
Periodic function; Trigonometric Series; Fourier series; Determination of Fourier coefficients Euler Formula (-π, π); Fourier Series in the intervals (0, 2π) and (-ℓ, ℓ); Even and Odd functions and their Fourier Series: Fourier cosine and Sine Series; Half range function; Parseval's formula; Fourier series in complex form (Introduction).
`
